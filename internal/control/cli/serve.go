package cli

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ServeCommand struct {
	Addr string `short:"a" long:"addr" description:"Address to listen on" value-name:"<addr>" default:"localhost:8714"`
}

// Execute runs a small echo endpoint suitable as a submit target: it accepts
// form POSTs of key/value pairs, remembers the latest value per key, and
// responds with the canonical (whitespace-trimmed) value.
// Value loads GET the remembered value back.
func (command *ServeCommand) Execute(args []string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var mtx sync.Mutex
	values := map[string]string{}

	mux := http.NewServeMux()
	mux.HandleFunc("/value", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {

		case http.MethodPost:
			if err := r.ParseForm(); err != nil {
				http.Error(w, "cannot parse form data", http.StatusBadRequest)
				return
			}
			key := r.PostForm.Get("key")
			if key == "" {
				http.Error(w, "missing 'key'", http.StatusBadRequest)
				return
			}
			canonical := strings.TrimSpace(r.PostForm.Get("value"))

			mtx.Lock()
			values[key] = canonical
			mtx.Unlock()

			log.Info().Str("key", key).Str("value", canonical).Msg("stored submitted value")
			fmt.Fprint(w, canonical)

		case http.MethodGet:
			key := r.URL.Query().Get("key")
			mtx.Lock()
			value := values[key]
			mtx.Unlock()
			fmt.Fprint(w, value)

		default:
			http.Error(w, "unsupported method", http.StatusMethodNotAllowed)
		}
	})

	log.Info().Str("addr", command.Addr).Msg("serving echo submit endpoint")
	return http.ListenAndServe(command.Addr, mux)
}
