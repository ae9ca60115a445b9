// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package controller

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

const spaIndexFile = "index.html"

// StaticController serves the built single page application.
type StaticController interface {
	Serve(w http.ResponseWriter, r *http.Request)
}

func NewStaticController(dir string) StaticController {
	return &staticControllerImpl{dir: dir}
}

type staticControllerImpl struct {
	dir string
}

// Serve returns the requested file when it exists, otherwise index.html so that
// client side routes survive a reload.
func (s staticControllerImpl) Serve(w http.ResponseWriter, r *http.Request) {
	requested := path.Clean("/" + r.URL.Path)
	fullPath := filepath.Join(s.dir, filepath.FromSlash(requested))

	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() || path.Base(requested) == spaIndexFile {
		http.ServeFile(w, r, filepath.Join(s.dir, spaIndexFile))
		return
	}
	http.ServeFile(w, r, fullPath)
}
