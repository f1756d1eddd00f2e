package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/DeveloperRalsei/the-third-sanctuary/internal/utils"
)

// .pak bundle layout: a version string, a file table of (name, offset,
// size) entries, then the concatenated file data. Offsets are relative
// to the end of the table. Strings are uint32 length + bytes, integers
// little-endian.

const packVersion = "PAKV0001"

type packEntry struct {
	Name   string
	Offset uint32
	Size   uint32
}

func readPackString(r io.Reader) (string, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writePackString(w io.Writer, s string) {
	binary.Write(w, binary.LittleEndian, uint32(len(s)))
	io.WriteString(w, s)
}

// ExtractPack unpacks a .pak asset bundle into outputDir, preserving
// entry paths.
func ExtractPack(pakPath, outputDir string) error {
	utils.Debug("Pack: opening bundle %s", pakPath)
	f, err := os.Open(pakPath)
	if err != nil {
		return err
	}
	defer f.Close()

	version, err := readPackString(f)
	if err != nil {
		return fmt.Errorf("pack header: %w", err)
	}
	if version != packVersion {
		return fmt.Errorf("pack: unsupported version %q", version)
	}

	var fileCount uint32
	if err := binary.Read(f, binary.LittleEndian, &fileCount); err != nil {
		return fmt.Errorf("pack header: %w", err)
	}
	utils.Debug("Pack: %d entries", fileCount)

	entries := make([]packEntry, fileCount)
	for i := uint32(0); i < fileCount; i++ {
		name, err := readPackString(f)
		if err != nil {
			return fmt.Errorf("pack entry %d: %w", i, err)
		}
		var offset, size uint32
		if err := binary.Read(f, binary.LittleEndian, &offset); err != nil {
			return fmt.Errorf("pack entry %d: %w", i, err)
		}
		if err := binary.Read(f, binary.LittleEndian, &size); err != nil {
			return fmt.Errorf("pack entry %d: %w", i, err)
		}
		entries[i] = packEntry{Name: name, Offset: offset, Size: size}
	}

	dataStart, _ := f.Seek(0, io.SeekCurrent)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	for _, entry := range entries {
		destPath := filepath.Join(outputDir, filepath.FromSlash(entry.Name))
		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return err
		}

		if _, err := f.Seek(dataStart+int64(entry.Offset), io.SeekStart); err != nil {
			return err
		}

		outF, err := os.Create(destPath)
		if err != nil {
			return err
		}
		_, err = io.CopyN(outF, f, int64(entry.Size))
		outF.Close()
		if err != nil {
			return fmt.Errorf("pack: extracting %s: %w", entry.Name, err)
		}
	}

	utils.Debug("Pack: extraction completed")
	return nil
}

// WritePack builds a .pak bundle from the given name -> content map.
// Entry names use forward slashes.
func WritePack(pakPath string, files map[string][]byte) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var table bytes.Buffer
	var data bytes.Buffer
	writePackString(&table, packVersion)
	binary.Write(&table, binary.LittleEndian, uint32(len(names)))
	for _, name := range names {
		writePackString(&table, name)
		binary.Write(&table, binary.LittleEndian, uint32(data.Len()))
		binary.Write(&table, binary.LittleEndian, uint32(len(files[name])))
		data.Write(files[name])
	}

	f, err := os.Create(pakPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := table.WriteTo(f); err != nil {
		return err
	}
	if _, err := data.WriteTo(f); err != nil {
		return err
	}
	return nil
}
