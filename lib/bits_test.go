package lib

import "testing"
import "fmt"

var _ = fmt.Sprintf("dummy")

func TestOnesin64(t *testing.T) {
	if x := Bit64(0).Ones(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	} else if x = Bit64(1).Ones(); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	} else if x = Bit64(0xaaaaaaaaaaaaaaaa).Ones(); x != 32 {
		t.Errorf("expected %v, got %v", 32, x)
	} else if x = Bit64(0xffffffffffffffff).Ones(); x != 64 {
		t.Errorf("expected %v, got %v", 64, x)
	}
}

func TestZerosin64(t *testing.T) {
	if x := Bit64(0).Zeros(); x != 64 {
		t.Errorf("expected %v, got %v", 64, x)
	} else if x = Bit64(1).Zeros(); x != 63 {
		t.Errorf("expected %v, got %v", 63, x)
	} else if x = Bit64(0x5555555555555555).Zeros(); x != 32 {
		t.Errorf("expected %v, got %v", 32, x)
	}
}

func TestFindfirstset(t *testing.T) {
	if x := Bit64(0).Findfirstset(); x != -1 {
		t.Errorf("expected %v, got %v", -1, x)
	} else if x = Bit64(1).Findfirstset(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	} else if x = Bit64(0x80).Findfirstset(); x != 7 {
		t.Errorf("expected %v, got %v", 7, x)
	} else if x = Bit64(0x8000000000000000).Findfirstset(); x != 63 {
		t.Errorf("expected %v, got %v", 63, x)
	} else if x = Bit64(0x60).Findfirstset(); x != 5 {
		t.Errorf("expected %v, got %v", 5, x)
	}
}

func TestIspowerof2(t *testing.T) {
	if Bit64(0).Ispowerof2() == true {
		t.Errorf("0 is not a power of 2")
	} else if Bit64(1).Ispowerof2() == false {
		t.Errorf("1 is a power of 2")
	} else if Bit64(4096).Ispowerof2() == false {
		t.Errorf("4096 is a power of 2")
	} else if Bit64(4097).Ispowerof2() == true {
		t.Errorf("4097 is not a power of 2")
	}
}

func BenchmarkOnesin64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Bit64(0xaaaaaaaaaaaaaaaa).Ones()
	}
}

func BenchmarkFindfirstset(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Bit64(0x8000000000000000).Findfirstset()
	}
}
