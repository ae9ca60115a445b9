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

package logger

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const requestIdKey contextKey = "requestId"

func WithRequestId(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, requestIdKey, requestId)
}

func RequestId(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestId, ok := ctx.Value(requestIdKey).(string); ok {
		return requestId
	}
	return ""
}

func getRequestPrefix(ctx context.Context) string {
	if requestId := RequestId(ctx); requestId != "" {
		return fmt.Sprintf("[requestId=%s] ", requestId)
	}
	return ""
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	log.Debug(getRequestPrefix(ctx) + fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	log.Info(getRequestPrefix(ctx) + fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	log.Warn(getRequestPrefix(ctx) + fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	log.Error(getRequestPrefix(ctx) + fmt.Sprintf(format, args...))
}

func Tracef(ctx context.Context, format string, args ...interface{}) {
	log.Trace(getRequestPrefix(ctx) + fmt.Sprintf(format, args...))
}
