/*
NAME
  types_test.go

AUTHOR
  Saxon Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package uci

import "testing"

func TestCrcLen(t *testing.T) {
	tests := []struct {
		a    int
		want int
	}{
		{1, 0},
		{11, 0},
		{12, 6},
		{19, 6},
		{20, 11},
		{1706, 11},
	}
	for _, test := range tests {
		if got := crcLen(test.a); got != test.want {
			t.Errorf("crcLen(%d) = %d, want %d", test.a, got, test.want)
		}
	}
}

func TestSegmented(t *testing.T) {
	tests := []struct {
		a, e int
		want bool
	}{
		{360, 1087, false},
		{360, 1088, true},
		{1013, 0, true},
		{11, 1706, false},
	}
	for _, test := range tests {
		if got := segmented(test.a, test.e); got != test.want {
			t.Errorf("segmented(%d, %d) = %v, want %v", test.a, test.e, got, test.want)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{10, 2, 5},
		{11, 2, 6},
		{1, 1, 1},
		{0, 5, 0},
	}
	for _, test := range tests {
		if got := ceilDiv(test.a, test.b); got != test.want {
			t.Errorf("ceilDiv(%d, %d) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestUCIConfigValidate(t *testing.T) {
	good := UCIConfig{OACK: 3, OSR: 1}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate(valid cfg) = %v, want nil", err)
	}

	bad := []UCIConfig{
		{OACK: -1},
		{OSR: -1},
		{OACK: 1700, OSR: 10},
		{PUSCH: PUSCHConfig{Alpha: 1.5}},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate(bad cfg %d) = nil, want error", i)
		}
	}
}

func TestPUCCHResourceModulation(t *testing.T) {
	tests := []struct {
		res  PUCCHResource
		want Modulation
	}{
		{PUCCHResource{Format: PUCCHFormat2}, ModQPSK},
		{PUCCHResource{Format: PUCCHFormat2, EnablePiBPSK: true}, ModQPSK},
		{PUCCHResource{Format: PUCCHFormat3}, ModQPSK},
		{PUCCHResource{Format: PUCCHFormat3, EnablePiBPSK: true}, ModBPSK},
		{PUCCHResource{Format: PUCCHFormat4, EnablePiBPSK: true}, ModBPSK},
	}
	for _, test := range tests {
		if got := test.res.Modulation(); got != test.want {
			t.Errorf("%+v Modulation() = %v, want %v", test.res, got, test.want)
		}
	}
}

func TestModulationQm(t *testing.T) {
	tests := []struct {
		m    Modulation
		want int
	}{
		{ModBPSK, 1},
		{ModQPSK, 2},
		{Mod16QAM, 4},
		{Mod64QAM, 6},
		{Mod256QAM, 8},
		{Modulation(99), 0},
	}
	for _, test := range tests {
		if got := test.m.Qm(); got != test.want {
			t.Errorf("%v.Qm() = %d, want %d", test.m, got, test.want)
		}
	}
}
