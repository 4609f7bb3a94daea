package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskDSN(t *testing.T) {
	cases := []struct {
		name string
		dsn  string
		want string
	}{
		{
			"url form",
			"gallery:s3cret@tcp(127.0.0.1:3306)/gallery?parseTime=true",
			"gallery:****@tcp(127.0.0.1:3306)/gallery?parseTime=true",
		},
		{
			"keyword form",
			"host=127.0.0.1 user=gallery password=s3cret dbname=gallery sslmode=disable",
			"host=127.0.0.1 user=gallery password=**** dbname=gallery sslmode=disable",
		},
		{
			"keyword form, mixed case key",
			"host=db Password=Hunter2 dbname=gallery",
			"host=db Password=**** dbname=gallery",
		},
		{
			"nothing to mask",
			"host=127.0.0.1 dbname=gallery",
			"host=127.0.0.1 dbname=gallery",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MaskDSN(tc.dsn))
		})
	}
}
