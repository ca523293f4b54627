// Copyright 2025 PelicanDB, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rewrite

var _ Scheduler = &SimpleTaskScheduler{}

// SimpleTaskScheduler is defined for serializing scheduling of rewrite tasks.
type SimpleTaskScheduler struct {
	stack *taskStack
}

// NewSimpleTaskScheduler returns a simple task scheduler, init logic
// included.
func NewSimpleTaskScheduler() Scheduler {
	return &SimpleTaskScheduler{
		stack: stackPool.Get().(*taskStack),
	}
}

// ExecuteTasks implements the Scheduler interface.
func (s *SimpleTaskScheduler) ExecuteTasks() error {
	for !s.stack.empty() {
		task := s.stack.pop()
		if err := task.Execute(); err != nil {
			return err
		}
	}
	return nil
}

// PushTask implements the Scheduler interface.
func (s *SimpleTaskScheduler) PushTask(task Task) {
	s.stack.push(task)
}

// Destroy implements the Scheduler interface.
func (s *SimpleTaskScheduler) Destroy() {
	stack := s.stack
	s.stack = nil
	stack.destroy()
}
