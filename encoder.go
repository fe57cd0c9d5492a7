package qrstyle

import (
	"strings"

	"github.com/pkg/errors"
	skip2 "github.com/skip2/go-qrcode"
	"github.com/yeqown/go-qrcode/v2"
)

// Encoder turns text into a QR module matrix at the given error-correction
// level. Implementations must not include a quiet zone in the matrix.
type Encoder interface {
	Encode(text string, level ErrorLevel) (Matrix, error)
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(text string, level ErrorLevel) (Matrix, error)

// Encode calls f(text, level).
func (f EncoderFunc) Encode(text string, level ErrorLevel) (Matrix, error) {
	return f(text, level)
}

// EncoderByName returns the encoder backend registered under name: "yeqown"
// (the default, also selected by "") or "skip2".
func EncoderByName(name string) (Encoder, error) {
	switch strings.ToLower(name) {
	case "", "yeqown":
		return NewEncoder(), nil
	case "skip2":
		return NewSkip2Encoder(), nil
	}
	return nil, errors.Errorf("qrstyle: unknown encoder %q", name)
}

type yeqownEncoder struct{}

// NewEncoder returns an Encoder backed by github.com/yeqown/go-qrcode/v2.
func NewEncoder() Encoder {
	return yeqownEncoder{}
}

func (yeqownEncoder) Encode(text string, level ErrorLevel) (Matrix, error) {
	qrc, err := qrcode.NewWith(text, yeqownLevel(level))
	if err != nil {
		return Matrix{}, errors.Wrap(err, "qrstyle: encode")
	}

	w := &matrixWriter{}
	if err = qrc.Save(w); err != nil {
		return Matrix{}, errors.Wrap(err, "qrstyle: collect matrix")
	}

	return NewMatrix(w.rows)
}

func yeqownLevel(level ErrorLevel) qrcode.EncodeOption {
	switch level {
	case LevelL:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case LevelQ:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	case LevelH:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	}
	return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
}

// matrixWriter implements qrcode.Writer and keeps the symbol as rows.
type matrixWriter struct {
	rows [][]bool
}

func (w *matrixWriter) Write(mat qrcode.Matrix) error {
	rows := make([][]bool, mat.Height())
	for i := range rows {
		rows[i] = make([]bool, mat.Width())
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		rows[y][x] = v.IsSet()
	})
	w.rows = rows

	return nil
}

func (w *matrixWriter) Close() error {
	return nil
}

type skip2Encoder struct{}

// NewSkip2Encoder returns an Encoder backed by github.com/skip2/go-qrcode.
func NewSkip2Encoder() Encoder {
	return skip2Encoder{}
}

func (skip2Encoder) Encode(text string, level ErrorLevel) (Matrix, error) {
	q, err := skip2.New(text, skip2Level(level))
	if err != nil {
		return Matrix{}, errors.Wrap(err, "qrstyle: encode")
	}
	q.DisableBorder = true

	return NewMatrix(q.Bitmap())
}

func skip2Level(level ErrorLevel) skip2.RecoveryLevel {
	switch level {
	case LevelL:
		return skip2.Low
	case LevelQ:
		return skip2.High
	case LevelH:
		return skip2.Highest
	}
	return skip2.Medium
}
