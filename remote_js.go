package main

import (
	"syscall/js"
)

// remoteConn relays console lines through the /ws hub served by viewerctl.
type remoteConn struct {
	ws    js.Value
	funcs []js.Func
	open  bool
}

// dialRemote connects to the relay next to the page. Received lines are
// pushed to chLine. A page served without the relay just logs the failure.
func dialRemote(chLine chan<- string, logPrint func(msg interface{})) *remoteConn {
	loc := js.Global().Get("location")
	scheme := "ws:"
	if loc.Get("protocol").String() == "https:" {
		scheme = "wss:"
	}
	url := scheme + "//" + loc.Get("host").String() + "/ws"

	r := &remoteConn{ws: js.Global().Get("WebSocket").New(url)}
	r.listen("open", func(js.Value) {
		r.open = true
		logPrint("remote connected")
	})
	r.listen("close", func(js.Value) {
		if r.open {
			logPrint("remote disconnected")
		}
		r.open = false
	})
	r.listen("message", func(e js.Value) {
		chLine <- e.Get("data").String()
	})
	return r
}

func (r *remoteConn) listen(event string, cb func(js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cb(args[0])
		return nil
	})
	r.funcs = append(r.funcs, f)
	r.ws.Call("addEventListener", event, f)
}

// Send mirrors a locally issued command to the other clients.
func (r *remoteConn) Send(line string) {
	if !r.open {
		return
	}
	r.ws.Call("send", line)
}

func (r *remoteConn) Close() {
	r.ws.Call("close")
	for _, f := range r.funcs {
		f.Release()
	}
}
