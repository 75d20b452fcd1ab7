// Package gui is the raylib desktop front end. It replays the recorded
// spring and graph views onto window rectangles every frame and fires at
// most one animation frame per window frame.
package gui
