/*
Copyright 2026 The cifsmount Authors All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package register

import (
	"fmt"
	"io"
	"os"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	guuid "github.com/google/uuid"
	"k8s.io/klog/v2"
)

const (
	specVersion = "1.0"
	// Source is the cloud events source of everything cifsmount emits
	Source = "https://github.com/cifsmount/cifsmount"
)

var (
	outputFile io.Writer = os.Stdout
	// GetUUID returns the id of the next event, replaced in tests
	GetUUID = randomID
)

// SetOutputFile sets the writer to emit all events to
func SetOutputFile(w io.Writer) {
	outputFile = w
}

// CloudEvent creates a CloudEvent from a log object & associated data
func CloudEvent(log Log, data map[string]string) cloudevents.Event {
	event := cloudevents.NewEvent()
	event.SetSource(Source)
	event.SetType(log.Type())
	event.SetSpecVersion(specVersion)
	if err := event.SetData(cloudevents.ApplicationJSON, data); err != nil {
		klog.Warningf("error setting data: %v", err)
	}
	event.SetID(GetUUID())
	return event
}

func printAsCloudEvent(log Log, data map[string]string) {
	event := CloudEvent(log, data)

	json, err := event.MarshalJSON()
	if err != nil {
		klog.Warningf("error marashalling event: %v", err)
		return
	}
	fmt.Fprintln(outputFile, string(json))
}

func randomID() string {
	return guuid.New().String()
}
