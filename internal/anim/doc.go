// Package anim implements the play/pause animation driver.
//
// The driver is a state machine over a single time scalar. Scheduling is
// expressed as tokens: [Driver.Toggle] and [Driver.Next] hand out a
// [FrameID], the front end arranges for it to come back on the next frame,
// and [Driver.Fire] checks it before doing any work. Pausing invalidates the
// token, which is how a pending frame gets canceled.
package anim
