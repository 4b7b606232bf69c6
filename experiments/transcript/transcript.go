package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ants/communication"
	"ants/game"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// Header is the first line of a transcript. It carries what is needed to
// rebuild the map.
type Header struct {
	GameID  string                 `json:"game_id"`
	Started time.Time              `json:"started"`
	Cells   []Cell                 `json:"cells"`
	Bases   [game.PlayerSize][]int `json:"bases"`
}

type Cell struct {
	Type      game.CellType `json:"type"`
	Resources int           `json:"resources"`
	Neighbors []int         `json:"neighbors"`
}

// Turn is one turn's input and the beacons that were emitted for it.
type Turn struct {
	Turn    int                        `json:"turn"`
	Scores  [game.PlayerSize]int       `json:"scores"`
	Cells   [][1 + game.PlayerSize]int `json:"cells"` // resources, ants per side
	Beacons []int                      `json:"beacons"`
}

type entry struct {
	Header *Header `json:"header,omitempty"`
	Turn   *Turn   `json:"turn,omitempty"`
}

// NewHeader describes a setup under a fresh game ID.
func NewHeader(setup *communication.Setup) Header {
	h := Header{
		GameID:  uuid.NewString(),
		Started: time.Now().UTC(),
		Bases:   setup.Bases,
	}
	for _, cell := range setup.Map.Cells {
		h.Cells = append(h.Cells, Cell{
			Type:      cell.Type,
			Resources: cell.InitialResources,
			Neighbors: append([]int(nil), cell.AdjacentIDs...),
		})
	}
	return h
}

// Setup rebuilds the static game description.
func (h Header) Setup() (*communication.Setup, error) {
	m := game.NewMap(len(h.Cells))
	for _, cell := range h.Cells {
		m.AddCell(cell.Type, cell.Resources)
	}
	for id, cell := range h.Cells {
		for _, n := range cell.Neighbors {
			if n < 0 || n >= len(h.Cells) {
				return nil, fmt.Errorf("cell %d has neighbor %d out of range", id, n)
			}
			m.AddBorder(id, n)
		}
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid map: %w", err)
	}
	return &communication.Setup{Map: m, Bases: h.Bases}, nil
}

// NewTurn snapshots a turn's input together with the emitted beacons.
func NewTurn(number int, in *communication.Turn, beacons []int) Turn {
	t := Turn{
		Turn:    number,
		Scores:  in.Scores,
		Cells:   make([][1 + game.PlayerSize]int, len(in.Cells)),
		Beacons: append([]int(nil), beacons...),
	}
	for id, cell := range in.Cells {
		t.Cells[id] = [1 + game.PlayerSize]int{cell.Resources, cell.Ants[game.Me], cell.Ants[game.Opponent]}
	}
	return t
}

// Input returns the turn as the communicator would have read it.
func (t Turn) Input() *communication.Turn {
	in := &communication.Turn{Scores: t.Scores, Cells: make([]game.CellUpdate, len(t.Cells))}
	for id, cell := range t.Cells {
		in.Cells[id] = game.CellUpdate{Resources: cell[0], Ants: [game.PlayerSize]int{cell[1], cell[2]}}
	}
	return in
}

// Writer appends JSONL entries to a zstd compressed file, flushing every entry
// so a killed process leaves a readable transcript.
type Writer struct {
	path string
	f    *os.File
	enc  *zstd.Encoder
	w    *bufio.Writer
}

// Create opens dir/game-<id>.jsonl.zst and writes the header.
func Create(dir string, header Header) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, fmt.Sprintf("game-%s.jsonl.zst", header.GameID))
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	w := &Writer{path: path, f: f, enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}
	if err := w.write(entry{Header: &header}); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}

// Path returns the transcript file.
func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) WriteTurn(t Turn) error {
	return w.write(entry{Turn: &t})
}

func (w *Writer) write(e entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	if err := w.w.Flush(); err != nil {
		return err
	}
	return w.enc.Flush()
}

func (w *Writer) Close() error {
	var err1 error
	if w.w != nil {
		_ = w.w.Flush()
	}
	if w.enc != nil {
		err1 = w.enc.Close()
		w.enc = nil
	}
	if w.f != nil {
		_ = w.f.Close()
		w.f = nil
	}
	w.w = nil
	return err1
}

// Read loads a whole transcript.
func Read(path string) (Header, []Turn, error) {
	var header Header
	f, err := os.Open(path)
	if err != nil {
		return header, nil, err
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		return header, nil, err
	}
	defer dec.Close()

	scanner := bufio.NewScanner(dec)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	turns := []Turn{}
	line := 0
	for scanner.Scan() {
		line++
		var e entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return header, nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		switch {
		case e.Header != nil && line == 1:
			header = *e.Header
		case e.Turn != nil && line > 1:
			turns = append(turns, *e.Turn)
		default:
			return header, nil, fmt.Errorf("%s line %d: unexpected entry", path, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return header, nil, fmt.Errorf("%s: %w", path, err)
	}
	if line == 0 {
		return header, nil, fmt.Errorf("%s: empty transcript", path)
	}
	return header, turns, nil
}
