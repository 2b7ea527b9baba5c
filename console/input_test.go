package console

import "testing"

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		row, column int
		expectedErr bool
	}{
		{name: "space separated", input: "3 4", row: 3, column: 4},
		{name: "comma separated", input: "3,4", row: 3, column: 4},
		{name: "comma and spaces with newline", input: " 9 , 0\n", row: 9, column: 0},
		{name: "one number", input: "3", expectedErr: true},
		{name: "three numbers", input: "1 2 3", expectedErr: true},
		{name: "letters", input: "a b", expectedErr: true},
		{name: "negative", input: "-1 0", expectedErr: true},
		{name: "past the grid", input: "0 10", expectedErr: true},
		{name: "empty", input: "", expectedErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			row, column, err := ParseCoordinates(test.input)
			if test.expectedErr {
				if err == nil {
					t.Fatalf("expected error for %q\tgot: (%d, %d)", test.input, row, column)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if row != test.row || column != test.column {
				t.Fatalf("expected: (%d, %d)\tgot: (%d, %d)", test.row, test.column, row, column)
			}
		})
	}
}
