// Copyright 2024 strand-http
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

package asyncchain

// ScheduleResult reports whether a handler managed to schedule the actual
// processing of a request. It says nothing about the outcome of that
// processing, only about the hand-off, and a Failure carries no detail:
// a handler that wants the reason known must log it before returning.
type ScheduleResult uint8

const (
	scheduleOK ScheduleResult = iota
	scheduleFailure
)

// Ok reports that the handler has scheduled the processing and has taken
// responsibility for eventually finishing the request.
func Ok() ScheduleResult { return scheduleOK }

// Failure reports that the handler could not schedule the processing and
// has produced no response.
func Failure() ScheduleResult { return scheduleFailure }

func (r ScheduleResult) String() string {
	if r == scheduleOK {
		return "ok"
	}
	return "failure"
}
