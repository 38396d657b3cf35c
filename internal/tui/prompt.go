package tui

// Picker answers folder requests by asking the host to show its path
// prompt. The chosen folder is published once the prompt is confirmed.
type Picker struct {
	requested bool
}

// Pick records the request; the answer arrives later as SetOpenDir.
func (p *Picker) Pick() (string, bool) {
	p.requested = true
	return "", false
}

// TakeRequest reports whether a folder was asked for since the last call.
func (p *Picker) TakeRequest() bool {
	r := p.requested
	p.requested = false
	return r
}
