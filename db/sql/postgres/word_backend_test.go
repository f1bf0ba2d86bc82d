package postgres

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/jacobpatterson1549/selene-scrabble/db/sql"
)

func TestWordBackendSetup(t *testing.T) {
	tests := []struct {
		setupErr error
		wantOk   bool
	}{
		{
			wantOk: true,
		},
		{
			setupErr: fmt.Errorf("could not set up mock"),
		},
	}
	for i, test := range tests {
		d := mockDatabase{
			SetupFunc: func(ctx context.Context, files []io.Reader) error {
				if len(files) != 1 {
					t.Errorf("Test %v: wanted 1 setup file, got %v", i, len(files))
					return nil
				}
				b, err := io.ReadAll(files[0])
				switch {
				case err != nil:
					t.Errorf("Test %v: reading setup file: %v", i, err)
				case !strings.Contains(string(b), "FUNCTION word_read"):
					t.Errorf("Test %v: wanted setup file to create word_read function, got: \n%s", i, b)
				}
				return test.setupErr
			},
		}
		wb := WordBackend{
			Database: d,
		}
		ctx := context.Background()
		err := wb.Setup(ctx)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		}
	}
}

func TestWordBackendContains(t *testing.T) {
	tests := []struct {
		queryErr error
		found    bool
		wantOk   bool
	}{
		{
			found:  true,
			wantOk: true,
		},
		{
			wantOk: true,
		},
		{
			queryErr: fmt.Errorf("could not read word from mock"),
		},
	}
	for i, test := range tests {
		d := mockDatabase{
			QueryFunc: func(ctx context.Context, q sql.Query, dest ...interface{}) error {
				wantCmd := "SELECT found FROM word_read($1)"
				wantArgs := []interface{}{"apple"}
				switch {
				case !reflect.DeepEqual(wantCmd, q.Cmd()):
					t.Errorf("Test %v: query commands not equal: \n wanted: %q \n got:    %q", i, wantCmd, q.Cmd())
				case !reflect.DeepEqual(wantArgs, q.Args()):
					t.Errorf("Test %v: query arguments not equal: \n wanted: %q \n got:    %q", i, wantArgs, q.Args())
				}
				*dest[0].(*bool) = test.found
				return test.queryErr
			},
		}
		wb := WordBackend{
			Database: d,
		}
		ctx := context.Background()
		got, err := wb.Contains(ctx, "apple")
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case test.found != got:
			t.Errorf("Test %v: wanted %v, got %v", i, test.found, got)
		}
	}
}

func TestWordBackendCreate(t *testing.T) {
	tests := []struct {
		execErr error
		wantOk  bool
	}{
		{
			wantOk: true,
		},
		{
			execErr: fmt.Errorf("could not create words in mock"),
		},
	}
	for i, test := range tests {
		words := []string{"apple", "banana"}
		d := mockDatabase{
			ExecFunc: func(ctx context.Context, queries ...sql.Query) error {
				if len(queries) != len(words) {
					t.Errorf("Test %v: wanted %v queries, got %v", i, len(words), len(queries))
					return test.execErr
				}
				for j, q := range queries {
					wantCmd := "SELECT word_create($1)"
					wantArgs := []interface{}{words[j]}
					switch {
					case wantCmd != q.Cmd():
						t.Errorf("Test %v: query %v commands not equal: \n wanted: %q \n got:    %q", i, j, wantCmd, q.Cmd())
					case !reflect.DeepEqual(wantArgs, q.Args()):
						t.Errorf("Test %v: query %v arguments not equal: \n wanted: %q \n got:    %q", i, j, wantArgs, q.Args())
					}
				}
				return test.execErr
			},
		}
		wb := WordBackend{
			Database: d,
		}
		ctx := context.Background()
		err := wb.Create(ctx, words...)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		}
	}
}
