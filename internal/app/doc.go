// Package app holds the application state shared by every front end and the
// handlers that mutate it.
//
// A front end owns one [State], forwards input changes to [State.SetField],
// the play control to [State.Toggle] and each due frame to [State.Frame],
// and schedules whatever [anim.FrameID] those return.
package app
