// SPDX-License-Identifier: EPL-2.0

package midiin

import (
	"fmt"
	"log/slog"

	"gitlab.com/gomidi/midi/v2"
)

// InPorts lists the input port names of the registered driver. A driver
// such as rtmididrv has to be imported by the program.
func InPorts() []string {
	ports := midi.GetInPorts()
	names := make([]string, 0, len(ports))
	for _, p := range ports {
		names = append(names, p.String())
	}

	return names
}

// Listen opens the input port whose name contains portName and feeds its
// messages to h. When the device goes away onLost is called, after all
// voices have been released, so a stuck note cannot outlive its keyboard.
// The returned stop function closes the listener.
func Listen(portName string, h *Handler, onLost func(error)) (stop func(), err error) {
	in, err := midi.FindInPort(portName)
	if err != nil {
		return nil, fmt.Errorf("midi port %q: %w", portName, err)
	}

	stopFn, err := midi.ListenTo(in, func(msg midi.Message, _ int32) {
		h.Handle(msg)
	}, midi.HandleError(func(listenErr error) {
		n := h.inst.AllOff()
		h.log.Warn("midi input lost", "port", in.String(), "released", n, "err", listenErr)
		if onLost != nil {
			onLost(listenErr)
		}
	}))
	if err != nil {
		return nil, fmt.Errorf("midi listen %q: %w", in.String(), err)
	}

	h.log.Info("midi input connected", slog.String("port", in.String()))

	return func() {
		stopFn()
		_ = in.Close()
	}, nil
}
