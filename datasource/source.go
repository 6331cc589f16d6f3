package datasource

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"github.com/fsnotify/fsnotify"
)

// Mode describes how a session acquired its data.
type Mode uint8

const (
	ModeNone Mode = iota
	// ModeStreaming tails a live, still-growing source.
	ModeStreaming
	// ModeReplaying reads a complete recorded trace.
	ModeReplaying
)

// Session is one loaded trace and its accumulated data.
type Session struct {
	ID   string
	Data *Dataset
	Mode Mode
	Err  error
}

type InputKind uint8

const (
	KindSample InputKind = iota
	KindHeadings
)

// InputData is one parsed element of a trace.
type InputData struct {
	Kind InputKind
	Sample
	Headings      []string
	HeadingSeries []int
}

// Sample is a single numeric observation in one series.
type Sample struct {
	TimestampNS int64
	Series      int
	Value       float64
}

// Source parses CSV traces into sessions and publishes session snapshots
// through a mutation pool, so UI code can subscribe with per-frame reads.
// Traces backed by files are tailed: when a watched file grows, parsing
// resumes past the previous EOF.
type Source struct {
	pool          *stream.MutationPool[string, Session]
	watcher       *fsnotify.Watcher
	appCtx        context.Context
	seriesCounter atomic.Int32
}

func NewSource(appCtx context.Context, mutator *stream.Mutator) (*Source, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Source{
		pool:    stream.NewMutationPool[string, Session](mutator),
		watcher: watcher,
		appCtx:  appCtx,
	}, nil
}

// SessionStream exposes the mutation pool for subscribers.
func (s *Source) SessionStream(ctx context.Context) <-chan map[string]*stream.Mutation[Session] {
	return s.pool.Stream(ctx)
}

// StreamSession streams snapshots of one session by id.
func (s *Source) StreamSession(ctx context.Context, sessionID string) <-chan Session {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	m := (<-s.SessionStream(ctx))[sessionID]
	if m == nil {
		return nil
	}
	return m.Stream(ctx)
}

// LoadFromFile prompts for a trace with the system file chooser and replays
// it.
func (s *Source) LoadFromFile(expl *explorer.Explorer) (string, error) {
	file, err := expl.ChooseFile()
	if err != nil {
		return "", err
	}
	return s.LoadFromStream(ModeReplaying, file), nil
}

// LoadFromStream starts a session consuming the given sources.
func (s *Source) LoadFromStream(mode Mode, sources ...io.ReadCloser) string {
	id := generateSessionID()
	return s.LoadFromStreamWithID(id, mode, sources...)
}

func (s *Source) LoadFromStreamWithID(sessionID string, mode Mode, sources ...io.ReadCloser) string {
	s.recordSession(sessionID, mode, sources...)
	return sessionID
}

func generateSessionID() string {
	return strings.Replace(time.Now().UTC().Format("20060102150405.000000000"), ".", "", 1)
}

func (s *Source) recordSession(sessionID string, mode Mode, sources ...io.ReadCloser) *stream.Mutation[Session] {
	box, _ := stream.Mutate(s.pool, sessionID, func(ctx context.Context) (values <-chan Session) {
		out := make(chan Session, 1)
		go func() {
			defer close(out)
			session := Session{
				ID:   sessionID,
				Data: &Dataset{},
				Mode: mode,
			}
			// Emit the empty dataset immediately so subscribers render
			// something before the first sample lands.
			out <- session

			raw := make(chan InputData, 1024)
			for _, src := range sources {
				watch := false
				if f, ok := src.(interface{ Name() string }); ok {
					if err := s.watcher.Add(f.Name()); err == nil {
						watch = true
					}
				}
				go s.readSource(src, raw, watch)
			}

			for {
				select {
				case <-ctx.Done():
					for _, src := range sources {
						src.Close()
					}
					return
				case input := <-raw:
					if input.Kind == KindHeadings {
						session.Data.SetHeadings(input.Headings, input.HeadingSeries)
					} else {
						session.Data.Insert(input.Sample)
					}
					out <- session
				}
			}
		}()
		return out
	})
	return box
}

// readSource parses one CSV stream: a heading row naming each column, then
// records whose first column is a timestamp in nanoseconds and whose
// remaining columns are numeric values. Empty cells are skipped, leaving
// gaps in the affected series. When watch is set, EOF waits for the watched
// file to grow and then resumes; otherwise EOF ends the stream.
func (s *Source) readSource(source io.Reader, samples chan InputData, watch bool) {
	csvReader := csv.NewReader(NewLineReader(source))
	csvReader.TrimLeadingSpace = true
	headings, err := csvReader.Read()
	if err != nil {
		log.Printf("failed reading CSV headings: %v", err)
		return
	}
	if len(headings) < 2 {
		log.Printf("CSV trace needs a timestamp column and at least one value column, got %d columns", len(headings))
		return
	}
	seriesIDs := make([]int, len(headings)-1)
	for i := range seriesIDs {
		seriesIDs[i] = int(s.seriesCounter.Add(1))
	}
	samples <- InputData{
		Kind:          KindHeadings,
		Headings:      headings[1:],
		HeadingSeries: seriesIDs,
	}
readLoop:
	for {
		rec, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if !watch {
					return
				}
				for ev := range s.watcher.Events {
					if ev.Op == fsnotify.Write {
						continue readLoop
					}
				}
			}
			log.Printf("could not read trace data: %v", err)
			return
		}
		ts, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
		if err != nil {
			log.Printf("failed parsing timestamp: %v", err)
			continue
		}
		for i := 1; i < len(rec) && i < len(headings); i++ {
			cell := strings.TrimSpace(rec[i])
			if len(cell) < 1 {
				// Skip null cells.
				continue
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				log.Printf("failed parsing data[%d]=%q: %v", i, rec[i], err)
				continue
			}
			samples <- InputData{
				Kind: KindSample,
				Sample: Sample{
					TimestampNS: ts,
					Series:      seriesIDs[i-1],
					Value:       value,
				},
			}
		}
	}
}
