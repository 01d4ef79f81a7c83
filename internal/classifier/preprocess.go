// Package classifier prepares leaf images and asks a served model for a class.
package classifier

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

const InputSize = 224

var ErrUndecodableImage = errors.New("image could not be decoded")

// Tensor is one RGB image in height, width, channel order with values in [0, 1].
type Tensor [][][]float32

func Preprocess(reader io.Reader) (Tensor, error) {
	source, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodableImage, err)
	}

	resized := image.NewRGBA(image.Rect(0, 0, InputSize, InputSize))
	draw.BiLinear.Scale(resized, resized.Bounds(), source, source.Bounds(), draw.Src, nil)

	tensor := make(Tensor, InputSize)
	for y := 0; y < InputSize; y++ {
		row := make([][]float32, InputSize)
		for x := 0; x < InputSize; x++ {
			offset := resized.PixOffset(x, y)
			pixel := resized.Pix[offset : offset+3 : offset+3]
			row[x] = []float32{
				float32(pixel[0]) / 255,
				float32(pixel[1]) / 255,
				float32(pixel[2]) / 255,
			}
		}
		tensor[y] = row
	}
	return tensor, nil
}
