// SPDX-License-Identifier: EPL-2.0

// Package keyboard maps a computer keyboard onto a one and a half octave
// piano and the number row onto waveforms.
//
// It knows nothing about windowing libraries; callers translate their key
// events into Key values and hand them to a Player.
//
// # Layout
//
// DefaultLayout puts white keys on the home row and black keys above:
//
//	 W E   T Y U   O P
//	A S D F G H J K L
//
// A is C4 and L is D5. R and I play nothing, matching the missing black keys
// between E-F and B-C. Keys 1 to 4 select sine, square, saw and triangle
// through WaveKeys.
//
// # Playing
//
//	p := keyboard.NewPlayer(s, keyboard.DefaultLayout)
//
//	// on key down, including auto-repeat
//	if err := p.Press('H'); err != nil {
//	    // a wave key failed to switch the table
//	}
//
//	// on key up
//	p.Release('H')
//
// Press ignores repeats of a key that is already held, so holding a key
// starts one voice. Release always sends Off for a note key, even if the
// press was never seen, so a note cannot stay stuck after the window loses
// focus mid-press.
package keyboard
