// SPDX-License-Identifier: EPL-2.0

// Package device drives a Renderer from an audio output.
//
// Three backends share the Backend interface:
//   - Oto, github.com/ebitengine/oto/v3, the default (left out with the
//     headless build tag)
//   - PortAudio, github.com/gordonklaus/portaudio, only with the portaudio
//     build tag since it needs the C library
//   - Headless, a ticker that renders into memory at real-time pace
//
// Open picks one by name:
//
//	s := synth.New()
//	out, err := device.Open("oto", s, device.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer out.Close()
//
//	if err := out.Start(ctx); err != nil {
//		return err
//	}
//
// The backend's goroutine is the render goroutine; notes are played from
// any other goroutine through the synth.
package device
