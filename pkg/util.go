package pkg

import (
	"io"
	"log"
	"os"
)

// InitLog sends the standard logger to dest. An empty dest discards logs.
func InitLog(dest, prefix string) (io.Closer, error) {
	log.SetPrefix(prefix)
	if dest == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}
