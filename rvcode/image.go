package rvcode

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

var ErrBadImage = errors.New("bad program image")

const imageVersion = 1

type image struct {
	Version int          `cbor:"1,keyasint"`
	Code    []byte       `cbor:"2,keyasint"`
	Lines   []int        `cbor:"3,keyasint"`
	Consts  []imageConst `cbor:"4,keyasint"`
}

type imageConst struct {
	Kind   Kind    `cbor:"1,keyasint"`
	Bool   bool    `cbor:"2,keyasint,omitempty"`
	Number float64 `cbor:"3,keyasint,omitempty"`
}

// EncodeImage writes p to w as a CBOR document.
func EncodeImage(w io.Writer, p *Program) error {
	img := image{
		Version: imageVersion,
		Code:    p.Code,
		Lines:   p.Lines,
		Consts:  make([]imageConst, 0, len(p.Consts)),
	}
	for _, v := range p.Consts {
		img.Consts = append(img.Consts, imageConst{
			Kind:   v.kind,
			Bool:   v.boolean,
			Number: v.number,
		})
	}
	return cbor.NewEncoder(w).Encode(img)
}

// DecodeImage reads a program written by EncodeImage and validates it.
func DecodeImage(r io.Reader) (*Program, error) {
	var img image
	if err := cbor.NewDecoder(r).Decode(&img); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadImage, err)
	}
	if img.Version != imageVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadImage, img.Version)
	}
	if len(img.Code) != len(img.Lines) {
		return nil, fmt.Errorf("%w: %d code bytes, %d lines", ErrBadImage, len(img.Code), len(img.Lines))
	}
	if len(img.Consts) > MaxConsts {
		return nil, fmt.Errorf("%w: %d constants", ErrBadImage, len(img.Consts))
	}

	p := NewProgram()
	for i, b := range img.Code {
		p.Write(b, img.Lines[i])
	}
	for i, c := range img.Consts {
		switch c.Kind {
		case KindBool:
			p.AddConst(BoolValue(c.Bool))
		case KindNone:
			p.AddConst(None)
		case KindNumber:
			p.AddConst(NumberValue(c.Number))
		default:
			return nil, fmt.Errorf("%w: constant %d has kind %v", ErrBadImage, i, c.Kind)
		}
	}

	for offset := 0; offset < len(p.Code); {
		op := OpCode(p.Code[offset])
		if op == OpConst {
			if offset+1 >= len(p.Code) {
				return nil, fmt.Errorf("%w: truncated operand at %d", ErrBadImage, offset)
			}
			if idx := int(p.Code[offset+1]); idx >= len(p.Consts) {
				return nil, fmt.Errorf("%w: constant index %d out of range at %d", ErrBadImage, idx, offset)
			}
		}
		offset += 1 + op.OperandWidth()
	}

	return p, nil
}
