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

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kennethstamaria/portfolio/portfolio-service/exception"
)

var validate = validator.New()

// ValidateObject checks validate struct tags and reports every failing field at once.
func ValidateObject(object interface{}) error {
	err := validate.Struct(object)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		if fieldError.Param() != "" {
			fields = append(fields, fmt.Sprintf("%s(%s=%s)", fieldError.Namespace(), fieldError.Tag(), fieldError.Param()))
		} else {
			fields = append(fields, fmt.Sprintf("%s(%s)", fieldError.Namespace(), fieldError.Tag()))
		}
	}
	return &exception.CustomError{
		Status:  http.StatusBadRequest,
		Code:    exception.InvalidObject,
		Message: exception.InvalidObjectMsg,
		Params:  map[string]interface{}{"fields": strings.Join(fields, ", ")},
	}
}
