// SPDX-License-Identifier: EPL-2.0

//go:build headless

package device

import "context"

// Oto is a placeholder in headless builds; NewOto always fails.
type Oto struct{}

func NewOto(Renderer, Config) (*Oto, error) {
	return nil, ErrBackendUnavailable
}

func (*Oto) Start(context.Context) error { return ErrBackendUnavailable }
func (*Oto) Stop() error                 { return nil }
func (*Oto) Close() error                { return nil }
