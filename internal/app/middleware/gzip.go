package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

var gzipWriters = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

// gzipWriter сжимает тело ответа. gzip.Writer создаётся при первой записи тела,
// поэтому ответы без тела (редиректы, 401, 404) уходят без Content-Encoding.
type gzipWriter struct {
	gin.ResponseWriter
	writer *gzip.Writer
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	if g.writer == nil {
		if g.ResponseWriter.Written() {
			return g.ResponseWriter.Write(data)
		}
		h := g.Header()
		h.Set("Content-Encoding", "gzip")
		h.Add("Vary", "Accept-Encoding")
		h.Del("Content-Length")

		g.writer = gzipWriters.Get().(*gzip.Writer)
		g.writer.Reset(g.ResponseWriter)
	}
	return g.writer.Write(data)
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

func (g *gzipWriter) close() {
	if g.writer == nil {
		return
	}
	_ = g.writer.Close()
	g.writer.Reset(io.Discard)
	gzipWriters.Put(g.writer)
	g.writer = nil
}

// GzipMiddleware возвращает Gin-middleware, который:
//  1. распаковывает тело запроса с заголовком Content-Encoding: gzip;
//  2. сжимает тело ответа, если клиент прислал Accept-Encoding: gzip.
func GzipMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Content-Encoding") == "gzip" {
			reader, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid Gzip content"})
				return
			}
			defer reader.Close()
			c.Request.Body = io.NopCloser(reader)
			c.Request.Header.Del("Content-Encoding")
		}

		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		gz := &gzipWriter{ResponseWriter: c.Writer}
		c.Writer = gz
		defer gz.close()

		c.Next()
	}
}
