package util

import (
	"encoding/binary"
	"io"
)

// ReadElement decodes one fixed-size little-endian field.
func ReadElement(r io.Reader, element interface{}) error {
	switch e := element.(type) {
	case *int32:
		rv, err := BinarySerializer.Uint32(r, binary.LittleEndian)
		if err != nil {
			return err
		}
		*e = int32(rv)
		return nil
	case *uint32:
		rv, err := BinarySerializer.Uint32(r, binary.LittleEndian)
		if err != nil {
			return err
		}
		*e = rv
		return nil
	case *Hash:
		_, err := io.ReadFull(r, e[:])
		return err
	}
	return binary.Read(r, binary.LittleEndian, element)
}

func ReadElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := ReadElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

func WriteElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case int32:
		return BinarySerializer.PutUint32(w, binary.LittleEndian, uint32(e))
	case uint32:
		return BinarySerializer.PutUint32(w, binary.LittleEndian, e)
	case *Hash:
		_, err := w.Write(e[:])
		return err
	}
	return binary.Write(w, binary.LittleEndian, element)
}

func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := WriteElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}
