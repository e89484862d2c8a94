// Package recording captures the drawing events of a text layout.
//
// A Recorder implements textlayout.Renderer and stores every event as a
// typed command instead of drawing it. Font faces are kept once in a
// ResourcePool and referenced by FaceRef. The finished Recording can be
// inspected or replayed to any other renderer.
//
// # Example
//
//	rec := recording.NewRecorder()
//	if err := layout.Draw(rec, 0, 0); err != nil {
//		return err
//	}
//	r := rec.FinishRecording()
//
//	for _, cmd := range r.Commands() {
//		fmt.Println(cmd.Type())
//	}
//
//	// Replay to a real renderer
//	err := r.Playback(screen)
package recording
