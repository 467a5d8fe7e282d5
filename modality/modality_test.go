package modality

import "testing"

func TestFromCode(t *testing.T) {
	cases := []struct {
		code string
		want Modality
	}{
		{"CT", CT},
		{"mg", MG},
		{" MR ", MR},
		{"ZZ", Other},
	}
	for _, c := range cases {
		if got := FromCode(c.code); got != c.want {
			t.Errorf("FromCode(%q) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestRequiresLossless(t *testing.T) {
	if !MG.RequiresLossless() {
		t.Errorf("MG must require lossless")
	}
	if CT.RequiresLossless() {
		t.Errorf("CT must not require lossless")
	}
}

func TestQualityPresetTargets(t *testing.T) {
	cases := []struct {
		preset     QualityPreset
		wantRatio  float64
		wantLayers int
	}{
		{Diagnostic, 0, 1},
		{HighQuality, 10.0, 5},
		{Standard, 20.0, 3},
		{Preview, 50.0, 2},
	}
	for _, c := range cases {
		if got := c.preset.TargetRatio(); got != c.wantRatio {
			t.Errorf("%v.TargetRatio() = %v, want %v", c.preset, got, c.wantRatio)
		}
		if got := c.preset.QualityLayers(); got != c.wantLayers {
			t.Errorf("%v.QualityLayers() = %v, want %v", c.preset, got, c.wantLayers)
		}
	}
}

func TestDefaultPreset(t *testing.T) {
	if MG.DefaultPreset() != Diagnostic {
		t.Errorf("MG must default to Diagnostic")
	}
	if CT.DefaultPreset() != HighQuality {
		t.Errorf("CT must default to HighQuality")
	}
}
