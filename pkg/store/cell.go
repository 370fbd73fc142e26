package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	bolt "go.etcd.io/bbolt"
	"src.exprval.dev/pkg/exprval"
	"src.exprval.dev/pkg/store/storedefs"
)

const bucketCell = "cell"

func init() {
	initDB["initialize cell table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCell))
		return err
	}
}

// Cell gets the value of a cell.
func (s *dbStore) Cell(name string) (exprval.Value, error) {
	var v exprval.Value
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCell)).Get([]byte(name))
		if b == nil {
			return storedefs.ErrNoCell
		}
		var err error
		v, err = decodeValue(b)
		if err != nil {
			return fmt.Errorf("cell %s: %w", name, err)
		}
		return nil
	})
	return v, err
}

// SetCell sets the value of a cell. The source text of numbers is kept.
func (s *dbStore) SetCell(name string, v exprval.Value) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCell))
		return b.Put([]byte(name), encodeValue(&v))
	})
}

// DelCell deletes a cell. Deleting a nonexistent cell is not an error.
func (s *dbStore) DelCell(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCell))
		return b.Delete([]byte(name))
	})
}

// CellNames returns the names of all cells in lexicographical order.
func (s *dbStore) CellNames() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketCell)).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// A cell is encoded as one kind byte, the 8-byte big-endian payload, a flag
// byte that is 1 when text is present and 0 otherwise, and the text.
const headerLen = 10

var (
	errShortRecord = errors.New("record too short")
	errNoText      = errors.New("string record without text")
	errTrailing    = errors.New("trailing bytes in record without text")
)

func encodeValue(v *exprval.Value) []byte {
	var text string
	hasText := v.HasCachedText()
	if hasText {
		text = v.Text()
	}
	buf := make([]byte, headerLen, headerLen+len(text))
	buf[0] = byte(v.Kind())
	switch v.Kind() {
	case exprval.Int:
		binary.BigEndian.PutUint64(buf[1:9], uint64(v.Int()))
	case exprval.Double:
		binary.BigEndian.PutUint64(buf[1:9], math.Float64bits(v.Double()))
	}
	if hasText {
		buf[9] = 1
		buf = append(buf, text...)
	}
	return buf
}

func decodeValue(b []byte) (exprval.Value, error) {
	if len(b) < headerLen {
		return exprval.Value{}, errShortRecord
	}
	payload := binary.BigEndian.Uint64(b[1:9])
	if b[9] > 1 {
		return exprval.Value{}, fmt.Errorf("bad text flag %d", b[9])
	}
	hasText := b[9] == 1
	if !hasText && len(b) > headerLen {
		return exprval.Value{}, errTrailing
	}
	text := string(b[headerLen:])

	var v exprval.Value
	switch exprval.Kind(b[0]) {
	case exprval.Int:
		if hasText {
			v.SetIntText(int64(payload), text)
		} else {
			v.SetInt(int64(payload))
		}
	case exprval.Double:
		f := math.Float64frombits(payload)
		if hasText {
			v.SetDoubleText(f, text)
		} else {
			v.SetDouble(f)
		}
	case exprval.String:
		if !hasText {
			return exprval.Value{}, errNoText
		}
		v = exprval.FromText(text)
	default:
		return exprval.Value{}, fmt.Errorf("unknown kind %d", b[0])
	}
	return v, nil
}
