package field

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"os"
)

// fieldFile is the on-disk layout of a saved field
type fieldFile struct {
	Width  int
	Height int
	Data   []Properties
}

// Save writes the field to a file in gob encoding. NaN sentinels survive the
// round trip since gob stores float bit patterns.
func (f *Field) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create field file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := gob.NewEncoder(writer).Encode(fieldFile{Width: f.width, Height: f.height, Data: f.data}); err != nil {
		return fmt.Errorf("failed to encode field: %w", err)
	}
	return writer.Flush()
}

// Load reads a field previously written by Save
func Load(filename string) (*Field, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open field file: %w", err)
	}
	defer file.Close()

	var decoded fieldFile
	if err := gob.NewDecoder(bufio.NewReader(file)).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode field: %w", err)
	}
	if len(decoded.Data) != decoded.Width*decoded.Height {
		return nil, fmt.Errorf("field file is corrupt: %dx%d with %d pixels", decoded.Width, decoded.Height, len(decoded.Data))
	}
	return &Field{data: decoded.Data, width: decoded.Width, height: decoded.Height}, nil
}
