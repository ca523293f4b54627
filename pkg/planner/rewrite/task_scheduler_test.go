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

import (
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
)

type recordingTask struct {
	id    int
	log   *[]int
	err   error
	sched Scheduler
	spawn Task
}

// Execute implements the Task interface.
func (rt *recordingTask) Execute() error {
	*rt.log = append(*rt.log, rt.id)
	if rt.spawn != nil {
		rt.sched.PushTask(rt.spawn)
	}
	return rt.err
}

// Desc implements the Task interface.
func (rt *recordingTask) Desc() string { return "recordingTask" }

func TestTaskStack(t *testing.T) {
	ts := newTaskStack()
	require.True(t, ts.empty())
	require.Nil(t, ts.pop())

	var log []int
	ts.push(&recordingTask{id: 1, log: &log})
	ts.push(&recordingTask{id: 2, log: &log})
	require.Equal(t, 2, ts.len())

	require.Equal(t, 2, ts.pop().(*recordingTask).id)
	require.Equal(t, 1, ts.pop().(*recordingTask).id)
	require.True(t, ts.empty())
}

func TestSchedulerLIFOOrder(t *testing.T) {
	sched := NewSimpleTaskScheduler()
	defer sched.Destroy()

	var log []int
	sched.PushTask(&recordingTask{id: 1, log: &log})
	sched.PushTask(&recordingTask{id: 2, log: &log})
	sched.PushTask(&recordingTask{id: 3, log: &log})
	require.NoError(t, sched.ExecuteTasks())
	require.Equal(t, []int{3, 2, 1}, log)
}

func TestSchedulerRunsSpawnedTasks(t *testing.T) {
	sched := NewSimpleTaskScheduler()
	defer sched.Destroy()

	var log []int
	sched.PushTask(&recordingTask{
		id:    1,
		log:   &log,
		sched: sched,
		spawn: &recordingTask{id: 2, log: &log},
	})
	require.NoError(t, sched.ExecuteTasks())
	require.Equal(t, []int{1, 2}, log)
}

func TestSchedulerStopsOnError(t *testing.T) {
	sched := NewSimpleTaskScheduler()
	defer sched.Destroy()

	var log []int
	sched.PushTask(&recordingTask{id: 1, log: &log})
	sched.PushTask(&recordingTask{id: 2, log: &log, err: errors.New("task failed")})
	err := sched.ExecuteTasks()
	require.ErrorContains(t, err, "task failed")
	// Task 1 stays on the stack, untouched.
	require.Equal(t, []int{2}, log)
}
