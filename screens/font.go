package screens

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rotisserie/eris"
	"golang.org/x/image/font/gofont/gomono"
)

const monoFontSize = 12

var (
	monoOnce sync.Once
	monoFace *text.GoTextFace
	monoErr  error
)

// MonoFace returns the embedded Go Mono face used for overlay text
func MonoFace() (*text.GoTextFace, error) {
	monoOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
		if err != nil {
			monoErr = eris.Wrap(err, "failed to load mono font")
			return
		}
		monoFace = &text.GoTextFace{Source: src, Size: monoFontSize}
	})
	return monoFace, monoErr
}
