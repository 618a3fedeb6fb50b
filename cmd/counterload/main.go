package main

import (
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tedmax100/counterkit/counter"
	ilog "github.com/tedmax100/counterkit/internal/log"
)

var (
	myName = filepath.Base(os.Args[0])
	logger *zap.SugaredLogger
)

var (
	optVariant    = flag.String("variant", "locked", "unsync|locked|sequenced")
	optGoroutines = flag.Int("goroutines", 10, "Number of writer goroutines")
	optIncrements = flag.Int("increments", 100_000, "Increments per goroutine")
	optReaders    = flag.Int("readers", 0, "Concurrent readers sampling while writers run")
	optLogLevel   = flag.String("log-level", "info", "debug|info|warn|error")
)

func init() {
	godotenv.Load()
	flag.Parse()

	logger = ilog.Must(ilog.New(ilog.WithLevel(*optLogLevel))).Sugar().
		With(zap.String("app", myName), zap.String("run", uuid.NewString()))
}

func main() {
	kind, err := counter.ParseKind(*optVariant)
	if err != nil {
		logger.Fatalf("*** %v", err)
	}

	c := counter.New(kind)
	want := int64(*optGoroutines) * int64(*optIncrements)

	logger.Infof("variant=%s goroutines=%d increments=%d readers=%d",
		kind, *optGoroutines, *optIncrements, *optReaders)

	stopReaders := make(chan struct{})
	var readers sync.WaitGroup
	readers.Add(*optReaders)
	for i := 0; i < *optReaders; i++ {
		go func(id int) {
			defer readers.Done()
			for {
				select {
				case <-stopReaders:
					return
				default:
					logger.Debugf("reader=%d observed=%d", id, c.Value())
					time.Sleep(10 * time.Millisecond)
				}
			}
		}(i)
	}

	started := time.Now()
	var writers sync.WaitGroup
	writers.Add(*optGoroutines)
	for i := 0; i < *optGoroutines; i++ {
		go func() {
			defer writers.Done()
			for j := 0; j < *optIncrements; j++ {
				c.Inc()
			}
		}()
	}
	writers.Wait()
	elapsed := time.Since(started)

	close(stopReaders)
	readers.Wait()

	got := c.Value()
	logger.Infof("elapsed=%s want=%d got=%d", elapsed, want, got)
	if lost := want - got; lost > 0 {
		logger.Warnf("lost %d updates to the unsynchronized read-modify-write", lost)
	}
}
