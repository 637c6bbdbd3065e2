package property

import "testing"

func strPtr(s string) *string     { return &s }
func intPtr(i int64) *int64       { return &i }
func floatPtr(f float64) *float64 { return &f }
func imgPtr(s []string) *[]string { return &s }

func TestToStoreRenamesYearBuilt(t *testing.T) {
	in := Input{YearBuilt: intPtr(1987)}

	cols, vals, err := in.ToStore()
	if err != nil {
		t.Fatalf("to store: %v", err)
	}
	if len(cols) != 1 || cols[0] != "year_built" {
		t.Errorf("cols = %v, want [year_built]", cols)
	}
	if len(vals) != 1 || vals[0].(int64) != 1987 {
		t.Errorf("vals = %v, want [1987]", vals)
	}
}

func TestToStoreDropsUnsetFields(t *testing.T) {
	in := Input{
		Title: strPtr("Urban Penthouse"),
		Baths: floatPtr(2.5),
	}

	cols, _, err := in.ToStore()
	if err != nil {
		t.Fatalf("to store: %v", err)
	}
	if len(cols) != 2 {
		t.Fatalf("cols = %v, want exactly title and baths", cols)
	}
	for _, col := range cols {
		if col != "title" && col != "baths" {
			t.Errorf("unexpected column %q", col)
		}
	}
}

func TestToStoreEncodesImages(t *testing.T) {
	in := Input{Images: imgPtr([]string{"/uploads/a.jpg", "/uploads/b.jpg"})}

	cols, vals, err := in.ToStore()
	if err != nil {
		t.Fatalf("to store: %v", err)
	}
	if cols[0] != "images" {
		t.Fatalf("cols = %v, want [images]", cols)
	}
	if vals[0].(string) != `["/uploads/a.jpg","/uploads/b.jpg"]` {
		t.Errorf("encoded images = %v", vals[0])
	}
}

func TestToStoreEmptyImagesStaysArray(t *testing.T) {
	in := Input{Images: imgPtr(nil)}

	_, vals, err := in.ToStore()
	if err != nil {
		t.Fatalf("to store: %v", err)
	}
	if vals[0].(string) != "[]" {
		t.Errorf("encoded images = %v, want []", vals[0])
	}
}

func TestDecodeImages(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "two urls", raw: `["/a.jpg","/b.jpg"]`, want: 2},
		{name: "empty array", raw: `[]`, want: 0},
		{name: "empty string", raw: ``, want: 0},
		{name: "json null", raw: `null`, want: 0},
		{name: "not json", raw: `garbage`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls, err := decodeImages(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if urls == nil {
				t.Fatal("urls must never be nil")
			}
			if len(urls) != tt.want {
				t.Errorf("len = %d, want %d", len(urls), tt.want)
			}
		})
	}
}
