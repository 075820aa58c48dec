// SPDX-License-Identifier: MIT
package main

import "testing"

func TestCheckCSSFlags(t *testing.T) {
	tests := []struct {
		pack     string
		varsOnly bool
		wantErr  bool
	}{
		{"", false, false},
		{"", true, false},
		{"ocean", false, false},
		{"ocean", true, true},
	}
	for _, tt := range tests {
		err := checkCSSFlags(tt.pack, tt.varsOnly)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkCSSFlags(%q, %v) error = %v, wantErr %v", tt.pack, tt.varsOnly, err, tt.wantErr)
		}
	}
}
