package hydrotopo

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/maseology/mmio"
)

func writeFloats32(fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("writeFloats32 failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeFloats32 failed: %v", err)
	}
	return nil
}

func writeInts(fp string, i []int32) error {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, i); err != nil {
		return fmt.Errorf("writeInts failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeInts failed: %v", err)
	}
	return nil
}

func writeBytes(fp string, b []uint8) error {
	if err := os.WriteFile(fp, b, 0644); err != nil {
		return fmt.Errorf("writeBytes failed: %v", err)
	}
	return nil
}

// Checkandprint writes every product as a flat binary grid for external
// inspection: float32 surfaces, int32 accumulation counts and single-byte
// D8 codes, prefixed with prfx (directory created as needed).
func (p *Products) Checkandprint(prfx string) error {
	mmio.MakeDir(mmio.GetFileDir(prfx + "x"))

	if err := writeFloats32(prfx+"conditioned.bil", p.Conditioned.A); err != nil {
		return err
	}
	if err := writeBytes(prfx+"flowdir.bil", p.Flowdir.Codes()); err != nil {
		return err
	}
	acc := make([]int32, len(p.Accum.A))
	for i, v := range p.Accum.A {
		acc[i] = int32(v)
	}
	if err := writeInts(prfx+"accum.bil", acc); err != nil {
		return err
	}
	if err := writeFloats32(prfx+"hand.bil", p.Hand.A); err != nil {
		return err
	}
	if err := writeFloats32(prfx+"slope.bil", p.Slope.A); err != nil {
		return err
	}
	return writeFloats32(prfx+"edtw.bil", p.Edtw.A)
}
