// SPDX-License-Identifier: EPL-2.0

// Package midiin plays an instrument from MIDI input using
// gitlab.com/gomidi/midi/v2.
//
// # Drivers
//
// The package registers no driver. Programs pick one with a blank import:
//
//	import _ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
//
// InPorts lists what the driver can see.
//
// # Listening
//
//	h := midiin.NewHandler(s, midiin.AllChannels, logger)
//	stop, err := midiin.Listen("Keystation", h, func(err error) {
//	    logger.Warn("keyboard unplugged", "err", err)
//	})
//	if err != nil {
//	    return err
//	}
//	defer stop()
//
// Listen matches the first input port whose name contains the given text.
// If the driver reports an error, every voice is released before onLost is
// called.
//
// # Message Mapping
//
// Handler turns channel messages into instrument calls:
//   - note on plays the equal tempered frequency of the key (A4 = 440 Hz)
//   - note off, or note on with velocity 0, releases it
//   - controllers 120 and 123 release every voice
//   - program changes 0 to 3 select sine, square, saw and triangle
//
// # Note Names
//
// ParseNote and ParseNotes read either plain frequencies or note names,
// which is what the render example's -notes flag accepts:
//
//	notes, err := midiin.ParseNotes("C4,E4,G4,440")
package midiin
