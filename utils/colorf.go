package utils

import "fmt"

// HexColor is 0xRRGGBB, the way the browser renderer takes colors
type HexColor uint32

func (c HexColor) String() string {
	return fmt.Sprintf("#%.6x", uint32(c)&0xffffff)
}
