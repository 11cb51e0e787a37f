package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/seqsense/modelviewer/remote"
)

func newServeCmd() *cobra.Command {
	var addr, root string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the viewer page, wasm binary and assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			logPrint("serving " + root + " on " + addr)
			return http.ListenAndServe(addr, newServeMux(root, remote.NewHub(logPrint)))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&root, "root", "www", "directory to serve")
	return cmd
}

func newServeMux(root string, hub *remote.Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	mux.Handle("/", &noCache{Handler: http.FileServer(http.Dir(root))})
	return mux
}

type noCache struct {
	http.Handler
}

func (h *noCache) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	h.Handler.ServeHTTP(w, r)
}
