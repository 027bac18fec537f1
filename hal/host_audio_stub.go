//go:build !cgo

package hal

type nullAudio struct{}

func newHostAudio() Audio { return nullAudio{} }

func (nullAudio) Chime() {}
