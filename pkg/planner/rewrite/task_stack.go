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

import "sync"

// stackPool is initialized for memory saving by reusing taskStack.
var stackPool = sync.Pool{
	New: func() any {
		return newTaskStack()
	},
}

// taskStack stores the optimizing tasks created before or during the
// optimizing process.
type taskStack struct {
	tasks []Task
}

func newTaskStack() *taskStack {
	return &taskStack{
		tasks: make([]Task, 0, 4),
	}
}

// destroy returns the stack to the pool once it is useless, like at the end
// of the optimizing phase.
func (ts *taskStack) destroy() {
	clear(ts.tasks)
	ts.tasks = ts.tasks[:0]
	stackPool.Put(ts)
}

// len returns the length of the current stack.
func (ts *taskStack) len() int {
	return len(ts.tasks)
}

// pop pops one task out of the stack, nil when empty.
func (ts *taskStack) pop() Task {
	if ts.empty() {
		return nil
	}
	tmp := ts.tasks[len(ts.tasks)-1]
	ts.tasks = ts.tasks[:len(ts.tasks)-1]
	return tmp
}

// push pushes one task into the stack.
func (ts *taskStack) push(one Task) {
	ts.tasks = append(ts.tasks, one)
}

// empty reports whether the stack holds no task.
func (ts *taskStack) empty() bool {
	return ts.len() == 0
}
