// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loam

import (
	"strconv"
	"testing"

	"github.com/z5labs/loam/fileutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Get(t *testing.T) {
	t.Run("will return the value", func(t *testing.T) {
		t.Run("if the key is defined", func(t *testing.T) {
			s := loadParams(t, "answer = 42\n")

			v, err := s.Get("answer")
			require.NoError(t, err)
			assert.Equal(t, "42", v)
		})

		t.Run("if the key carries a description", func(t *testing.T) {
			s := loadParams(t, "timeout = 30\n")

			v, err := s.Get("timeout - in seconds")
			require.NoError(t, err)
			assert.Equal(t, "30", v)
		})

		t.Run("if the value is empty", func(t *testing.T) {
			s := loadParams(t, "empty =\n")

			v, err := s.Get("empty")
			require.NoError(t, err)
			assert.Equal(t, "", v)
		})
	})

	t.Run("will return the default", func(t *testing.T) {
		t.Run("if the key is undefined", func(t *testing.T) {
			s := loadParams(t, "")

			v, err := s.Get("answer", "fallback")
			require.NoError(t, err)
			assert.Equal(t, "fallback", v)
		})
	})

	t.Run("will return an UndefinedParameterError", func(t *testing.T) {
		t.Run("if the key is undefined and no default is given", func(t *testing.T) {
			s := loadParams(t, "")

			_, err := s.Get("answer - the answer to everything")

			var uerr UndefinedParameterError
			if !assert.ErrorAs(t, err, &uerr) {
				return
			}
			assert.Equal(t, "answer - the answer to everything", uerr.Key)
			assert.Equal(t, s.Root(), uerr.RootFile)
		})
	})

	t.Run("will return ErrNotLoaded", func(t *testing.T) {
		t.Run("if no parameter file has been loaded", func(t *testing.T) {
			s := New()

			_, err := s.Get("answer")
			assert.ErrorIs(t, err, ErrNotLoaded)
		})

		t.Run("if a default is given", func(t *testing.T) {
			s := New()

			_, err := s.Get("answer", "fallback")
			assert.ErrorIs(t, err, ErrNotLoaded)
		})
	})
}

func TestStore_GetInt(t *testing.T) {
	t.Run("will return the parsed value", func(t *testing.T) {
		t.Run("if the value is a number", func(t *testing.T) {
			s := loadParams(t, "port = 8080\n")

			n, err := s.GetInt("port")
			require.NoError(t, err)
			assert.Equal(t, 8080, n)
		})

		t.Run("if the value is negative", func(t *testing.T) {
			s := loadParams(t, "offset = -3\n")

			n, err := s.GetInt("offset")
			require.NoError(t, err)
			assert.Equal(t, -3, n)
		})
	})

	t.Run("will return the default", func(t *testing.T) {
		t.Run("if the key is undefined", func(t *testing.T) {
			s := loadParams(t, "")

			n, err := s.GetInt("port", 9000)
			require.NoError(t, err)
			assert.Equal(t, 9000, n)
		})
	})

	t.Run("will return a MalformedValueError", func(t *testing.T) {
		t.Run("if the value is no number", func(t *testing.T) {
			s := loadParams(t, "port = eighty\n")

			_, err := s.GetInt("port")

			var merr MalformedValueError
			if !assert.ErrorAs(t, err, &merr) {
				return
			}
			assert.Equal(t, "port", merr.Key)
			assert.Equal(t, "eighty", merr.Value)
			assert.ErrorIs(t, err, strconv.ErrSyntax)
		})

		t.Run("if a default is given", func(t *testing.T) {
			s := loadParams(t, "port = eighty\n")

			// Defaults cover absence, not corruption.
			_, err := s.GetInt("port", 9000)

			var merr MalformedValueError
			assert.ErrorAs(t, err, &merr)
		})
	})
}

func TestStore_GetFloat64(t *testing.T) {
	t.Run("will return the parsed value", func(t *testing.T) {
		t.Run("if the value is a decimal", func(t *testing.T) {
			s := loadParams(t, "threshold = 0.75\n")

			f, err := s.GetFloat64("threshold")
			require.NoError(t, err)
			assert.Equal(t, 0.75, f)
		})
	})

	t.Run("will return the default", func(t *testing.T) {
		t.Run("if the key is undefined", func(t *testing.T) {
			s := loadParams(t, "")

			f, err := s.GetFloat64("threshold", 0.5)
			require.NoError(t, err)
			assert.Equal(t, 0.5, f)
		})
	})

	t.Run("will return a MalformedValueError", func(t *testing.T) {
		t.Run("if the value is no decimal", func(t *testing.T) {
			s := loadParams(t, "threshold = high\n")

			_, err := s.GetFloat64("threshold")

			var merr MalformedValueError
			assert.ErrorAs(t, err, &merr)
		})
	})
}

func TestStore_GetFloat32(t *testing.T) {
	t.Run("will return the parsed value", func(t *testing.T) {
		t.Run("if the value is a decimal", func(t *testing.T) {
			s := loadParams(t, "threshold = 0.25\n")

			f, err := s.GetFloat32("threshold")
			require.NoError(t, err)
			assert.Equal(t, float32(0.25), f)
		})
	})

	t.Run("will return the default", func(t *testing.T) {
		t.Run("if the key is undefined", func(t *testing.T) {
			s := loadParams(t, "")

			f, err := s.GetFloat32("threshold", 1.5)
			require.NoError(t, err)
			assert.Equal(t, float32(1.5), f)
		})
	})
}

func TestStore_GetBool(t *testing.T) {
	t.Run("will report false", func(t *testing.T) {
		for _, word := range []string{"inactive", "off", "false", "no", "none", "OFF", "False"} {
			t.Run("if the value is "+word, func(t *testing.T) {
				s := loadParams(t, "flag = "+word+"\n")

				b, err := s.GetBool("flag")
				require.NoError(t, err)
				assert.False(t, b)
			})
		}
	})

	t.Run("will report true", func(t *testing.T) {
		for _, word := range []string{"true", "yes", "on", "active", "1", "0", "maybe", ""} {
			t.Run("if the value is "+strconv.Quote(word), func(t *testing.T) {
				s := loadParams(t, "flag = "+word+"\n")

				b, err := s.GetBool("flag")
				require.NoError(t, err)
				assert.True(t, b)
			})
		}
	})

	t.Run("will return the default", func(t *testing.T) {
		t.Run("if the key is undefined and the default is true", func(t *testing.T) {
			s := loadParams(t, "")

			b, err := s.GetBool("flag", true)
			require.NoError(t, err)
			assert.True(t, b)
		})

		t.Run("if the key is undefined and the default is false", func(t *testing.T) {
			s := loadParams(t, "")

			b, err := s.GetBool("flag", false)
			require.NoError(t, err)
			assert.False(t, b)
		})
	})

	t.Run("will ignore the default", func(t *testing.T) {
		t.Run("if the key is defined", func(t *testing.T) {
			s := loadParams(t, "flag = off\n")

			b, err := s.GetBool("flag", true)
			require.NoError(t, err)
			assert.False(t, b)
		})
	})

	t.Run("will return an UndefinedParameterError", func(t *testing.T) {
		t.Run("if the key is undefined and no default is given", func(t *testing.T) {
			s := loadParams(t, "")

			_, err := s.GetBool("flag")

			var uerr UndefinedParameterError
			assert.ErrorAs(t, err, &uerr)
		})
	})
}

func TestStore_GetList(t *testing.T) {
	t.Run("will split the value on commas", func(t *testing.T) {
		t.Run("if elements are separated plainly", func(t *testing.T) {
			s := loadParams(t, "colors = red,green,blue\n")

			l, err := s.GetList("colors")
			require.NoError(t, err)
			assert.Equal(t, []string{"red", "green", "blue"}, l)
		})

		t.Run("if separators carry whitespace", func(t *testing.T) {
			s := loadParams(t, "colors = red , green ,blue\n")

			l, err := s.GetList("colors")
			require.NoError(t, err)
			assert.Equal(t, []string{"red", "green", "blue"}, l)
		})

		t.Run("if the value is a single element", func(t *testing.T) {
			s := loadParams(t, "colors = red\n")

			l, err := s.GetList("colors")
			require.NoError(t, err)
			assert.Equal(t, []string{"red"}, l)
		})

		t.Run("if the value holds an inner empty element", func(t *testing.T) {
			s := loadParams(t, "colors = red,,blue\n")

			l, err := s.GetList("colors")
			require.NoError(t, err)
			assert.Equal(t, []string{"red", "", "blue"}, l)
		})
	})

	t.Run("will drop trailing empty elements", func(t *testing.T) {
		t.Run("if the value ends in separators", func(t *testing.T) {
			s := loadParams(t, "colors = red,blue,,\n")

			l, err := s.GetList("colors")
			require.NoError(t, err)
			assert.Equal(t, []string{"red", "blue"}, l)
		})

		t.Run("if the value is separators only", func(t *testing.T) {
			s := loadParams(t, "colors = ,\n")

			l, err := s.GetList("colors")
			require.NoError(t, err)
			assert.Empty(t, l)
		})
	})

	t.Run("will return one empty element", func(t *testing.T) {
		t.Run("if the value is empty", func(t *testing.T) {
			s := loadParams(t, "colors =\n")

			l, err := s.GetList("colors")
			require.NoError(t, err)
			assert.Equal(t, []string{""}, l)
		})
	})

	t.Run("will return nil without error", func(t *testing.T) {
		t.Run("if the key is undefined", func(t *testing.T) {
			s := loadParams(t, "")

			l, err := s.GetList("colors")
			require.NoError(t, err)
			assert.Nil(t, l)
		})
	})

	t.Run("will return ErrNotLoaded", func(t *testing.T) {
		t.Run("if no parameter file has been loaded", func(t *testing.T) {
			s := New()

			_, err := s.GetList("colors")
			assert.ErrorIs(t, err, ErrNotLoaded)
		})
	})
}

func TestStore_GetPath(t *testing.T) {
	t.Run("will return the value untouched", func(t *testing.T) {
		t.Run("if no local root is configured", func(t *testing.T) {
			s := loadParams(t, "data = ./corpus/facts.tsv\n")

			p, err := s.GetPath("data")
			require.NoError(t, err)
			assert.Equal(t, "./corpus/facts.tsv", p)
		})

		t.Run("if the value is absolute", func(t *testing.T) {
			s := loadParams(t, "data = /var/corpus/facts.tsv\n", WithLocalRoot("/local"))

			p, err := s.GetPath("data")
			require.NoError(t, err)
			assert.Equal(t, "/var/corpus/facts.tsv", p)
		})

		t.Run("if the value is relative without a dot prefix", func(t *testing.T) {
			s := loadParams(t, "data = corpus/facts.tsv\n", WithLocalRoot("/local"))

			p, err := s.GetPath("data")
			require.NoError(t, err)
			assert.Equal(t, "corpus/facts.tsv", p)
		})
	})

	t.Run("will rewrite against the local root", func(t *testing.T) {
		t.Run("if the value starts with a dot slash", func(t *testing.T) {
			s := loadParams(t, "data = ./corpus/facts.tsv\n", WithLocalRoot("/local"))

			// The dot form loses the byte after its prefix, as it
			// always has.
			p, err := s.GetPath("data")
			require.NoError(t, err)
			assert.Equal(t, "/local/orpus/facts.tsv", p)
		})

		t.Run("if the value starts with a parent reference", func(t *testing.T) {
			s := loadParams(t, "data = ../shared/facts.tsv\n", WithLocalRoot("/local"))

			p, err := s.GetPath("data")
			require.NoError(t, err)
			assert.Equal(t, "/local/../shared/facts.tsv", p)
		})

		t.Run("if the local root came without a separator", func(t *testing.T) {
			s := loadParams(t, "data = ../shared\n", WithLocalRoot("/local/data"))

			p, err := s.GetPath("data")
			require.NoError(t, err)
			assert.Equal(t, "/local/data/../shared", p)
		})
	})

	t.Run("will return the default untouched", func(t *testing.T) {
		t.Run("if the key is undefined", func(t *testing.T) {
			s := loadParams(t, "", WithLocalRoot("/local"))

			p, err := s.GetPath("data", "./fallback")
			require.NoError(t, err)
			assert.Equal(t, "./fallback", p)
		})
	})

	t.Run("will return an UndefinedParameterError", func(t *testing.T) {
		t.Run("if the key is undefined and no default is given", func(t *testing.T) {
			s := loadParams(t, "", WithLocalRoot("/local"))

			_, err := s.GetPath("data")

			var uerr UndefinedParameterError
			assert.ErrorAs(t, err, &uerr)
		})
	})
}

func TestStore_GetFile(t *testing.T) {
	t.Run("will return the rewritten path as a file", func(t *testing.T) {
		t.Run("if the key is defined", func(t *testing.T) {
			s := loadParams(t, "data = ../shared/facts.tsv\n", WithLocalRoot("/local"))

			f, err := s.GetFile("data")
			require.NoError(t, err)
			assert.Equal(t, fileutil.File("/local/../shared/facts.tsv"), f)
		})
	})

	t.Run("will return the default", func(t *testing.T) {
		t.Run("if the key is undefined", func(t *testing.T) {
			s := loadParams(t, "")

			f, err := s.GetFile("data", "fallback.tsv")
			require.NoError(t, err)
			assert.Equal(t, fileutil.File("fallback.tsv"), f)
		})
	})
}
