package snapshot

import (
	"errors"
	"syscall/js"

	"github.com/seqsense/modelviewer/blob"
)

// BrowserSaver asks the user where to save through the File System Access
// API and falls back to an anchor download where it is not available.
type BrowserSaver struct {
	MIMEType string
}

func (s BrowserSaver) Save(data []byte, name string) error {
	b := blob.New(data, s.MIMEType)
	picker := js.Global().Get("showSaveFilePicker")
	if picker.Type() != js.TypeFunction {
		download(b, name)
		return nil
	}

	chErr := make(chan error, 1)
	onError := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if args[0].Get("name").String() == "AbortError" {
			chErr <- ErrCanceled
			return nil
		}
		chErr <- errors.New(args[0].Call("toString").String())
		return nil
	})
	defer onError.Release()
	onWritable := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		w := args[0]
		return w.Call("write", b.JS()).Call("then",
			js.FuncOf(func(this js.Value, _ []js.Value) interface{} {
				return w.Call("close")
			}),
		)
	})
	defer onWritable.Release()
	onHandle := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return args[0].Call("createWritable")
	})
	defer onHandle.Release()
	onDone := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chErr <- nil
		return nil
	})
	defer onDone.Release()

	js.Global().Call("showSaveFilePicker", map[string]interface{}{
		"suggestedName": name,
	}).Call("then", onHandle).Call("then", onWritable).Call("then", onDone).Call("catch", onError)

	return <-chErr
}

func download(b blob.Blob, name string) {
	url := js.Global().Get("URL").Call("createObjectURL", b.JS())
	a := js.Global().Get("document").Call("createElement", "a")
	a.Set("href", url)
	a.Set("download", name)
	a.Call("click")
	js.Global().Get("URL").Call("revokeObjectURL", url)
}
