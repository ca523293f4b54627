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

// Task is an atomic unit of optimization work. A running task may push
// successive tasks into its scheduler, which is how the rewrite phase
// iterates to fixpoint without recursive task chains.
type Task interface {
	// Execute runs the task to completion; it is never suspended.
	Execute() error
	// Desc describes the task for logs.
	Desc() string
}

// Scheduler serializes task execution: exactly one task runs at a time and
// runs to completion before the next starts.
type Scheduler interface {
	// ExecuteTasks drains the scheduler, stopping at the first task error.
	ExecuteTasks() error
	// PushTask adds a task to be run.
	PushTask(task Task)
	// Destroy releases the internal resources.
	Destroy()
}
