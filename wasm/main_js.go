//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/voxelsplace/qrstl/api"
	"github.com/voxelsplace/qrstl/qrstl"
)

// qr2stl(text, baseHeight, baseSize, pixelSize) -> Uint8Array | error string
func qr2stl(this js.Value, args []js.Value) any {
	if len(args) < 4 {
		return js.ValueOf(qrstl.ErrEncoding.Error())
	}
	input := args[0].String()
	out, err := api.Generate([]byte(input),
		float32(numberArg(args[1])),
		float32(numberArg(args[2])),
		float32(numberArg(args[3])),
	)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	uint8arr := js.Global().Get("Uint8Array").New(len(out))
	js.CopyBytesToJS(uint8arr, out)
	return uint8arr
}

// numberArg accepts numbers and numeric strings, as form fields arrive as
// strings.
func numberArg(v js.Value) float64 {
	if v.Type() == js.TypeNumber {
		return v.Float()
	}
	return js.Global().Call("Number", v).Float()
}

func main() {
	js.Global().Set("qr2stl", js.FuncOf(qr2stl))
	select {}
}
