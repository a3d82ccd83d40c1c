package registry

import (
	"testing"
)

const testMaze = "#####\n#P.G#\n#X..#\n#####\n"

func TestRegisterAndOpen(t *testing.T) {
	Register("test-open.txt", "Test Open", []byte(testMaze))

	if !Exists("test-open.txt") {
		t.Fatal("Exists() = false, expected true")
	}
	if Exists("nope.txt") {
		t.Error("Exists(nope.txt) = true, expected false")
	}

	l, err := Open("test-open.txt")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if len(l.Gums) != 4 {
		t.Errorf("len(Gums) = %d, expected 4", len(l.Gums))
	}

	// each Open returns an independent layout
	l.Gums = nil
	if l2, _ := Open("test-open.txt"); len(l2.Gums) != 4 {
		t.Errorf("layouts share state: len(Gums) = %d", len(l2.Gums))
	}
}

func TestOpenUnknown(t *testing.T) {
	if _, err := Open("missing.txt"); err == nil {
		t.Error("Open(missing.txt) expected error")
	}
}

func TestListSortedWithInfo(t *testing.T) {
	Register("test-b.txt", "B", []byte(testMaze))
	Register("test-a.txt", "A", []byte(testMaze))

	var found []MazeInfo
	for _, info := range List() {
		if info.Name == "test-a.txt" || info.Name == "test-b.txt" {
			found = append(found, info)
		}
	}

	if len(found) != 2 {
		t.Fatalf("List() found %d test mazes, expected 2", len(found))
	}
	if found[0].Name != "test-a.txt" {
		t.Errorf("List()[0] = %s, expected test-a.txt", found[0].Name)
	}

	want := MazeInfo{Name: "test-a.txt", Title: "A", Width: 5, Height: 4, Gums: 4, Ghosts: 1}
	if found[0] != want {
		t.Errorf("info = %+v, expected %+v", found[0], want)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		id   string
		data string
	}{
		{"duplicate", "test-dup.txt", testMaze},
		{"invalid", "test-invalid.txt", "###\n#.#\n###"},
	}
	Register("test-dup.txt", "Dup", []byte(testMaze))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() expected panic")
				}
			}()
			Register(tt.id, tt.name, []byte(tt.data))
		})
	}
}
