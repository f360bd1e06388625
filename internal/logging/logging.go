package logging

import (
	"io"
	"os"
	"strings"

	"klondike/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs the global logger. Logs go to the configured file so they
// never interleave with the board on stdout; the returned closer releases
// that file.
func Init(cfg config.LogConfig) (io.Closer, error) {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var output io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	// an empty LOG_FILE falls back to its default, so "-" is the way to ask for stderr
	if path := strings.TrimSpace(cfg.File); path != "" && path != "-" {
		w, err := newRotatingWriter(path, cfg.MaxMB)
		if err != nil {
			return nil, err
		}
		output, closer = w, w
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output, NoColor: output != os.Stderr}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).With().Timestamp().Logger()
	if n := cfg.SampleEvery; n > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(n)})
	}
	log.Logger = logger
	return closer, nil
}
