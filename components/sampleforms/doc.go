// Package sampleforms serves saved forms over net/http so an editor can list
// them and fetch a schema by id.
//
// GET {route} returns {"data":[...]} filtered by the q and limit parameters.
// GET {route}/{id} returns the stored schema document as-is. Both routes
// answer HEAD; other methods get 405. When no store is configured the
// bundled samples are served from an in-memory library.
package sampleforms
