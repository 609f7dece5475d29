package scheduler

import "io"

type AlarmPlayer interface {
	Play() error
}

// BellPlayer rings the terminal bell on the given writer.
type BellPlayer struct {
	Out io.Writer
}

func (p BellPlayer) Play() error {
	_, err := p.Out.Write([]byte("\a"))
	return err
}
