// Package trace writes Chrome trace-event files (chrome://tracing, Perfetto)
// with begin/end spans around frame work.
package trace

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/spf13/afero"
)

type MeasureTime struct {
	file afero.File
	lock *sync.Mutex
	now  func() time.Time
	open bool
}

// NewMeasureTime creates filename on fs and writes the trace header.
func NewMeasureTime(fs afero.Fs, filename string) (*MeasureTime, error) {
	return newMeasureTime(fs, filename, time.Now)
}

func newMeasureTime(fs afero.Fs, filename string, now func() time.Time) (*MeasureTime, error) {
	file, err := fs.Create(filename)
	if err != nil {
		return nil, err
	}
	file.WriteString("{\"traceEvents\": [")
	ts := now().UnixMicro()
	file.WriteString(
		`{ "name": "process_name",` +
			`"ph": "M",` +
			`"ts":` + strconv.FormatInt(ts, 10) + `,` +
			`"pid": 1, "cat": "__metadata",` +
			`"args": {"name": "animcharts"}}`)
	file.Sync()
	return &MeasureTime{file: file, lock: &sync.Mutex{}, now: now, open: true}, nil
}

// Time opens a span.
func (m *MeasureTime) Time(name string) {
	m.event("B", name)
}

// Stop closes the span opened with the same name.
func (m *MeasureTime) Stop(name string) {
	m.event("E", name)
}

func (m *MeasureTime) event(phase, name string) {
	if m == nil {
		return
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	if !m.open {
		return
	}
	ts := m.now().UnixMicro()
	m.file.WriteString(
		`, { "ph": "` + phase + `", "cat": "_",` +
			`"name": ` + quote(name) + `,` +
			`"ts": ` + strconv.FormatInt(ts, 10) + `,` +
			`"pid": 1, "tid": 1}`)
}

// Finish terminates the JSON document and closes the file. Later spans are
// dropped.
func (m *MeasureTime) Finish() error {
	if m == nil {
		return nil
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	if !m.open {
		return nil
	}
	m.open = false
	m.file.WriteString("]}")
	return m.file.Close()
}

// quote renders name as a JSON string.
func quote(name string) string {
	data, _ := json.Marshal(name)
	return string(data)
}
