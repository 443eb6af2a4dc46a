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

package mount

import (
	"fmt"
	"path"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	shareRe    = regexp.MustCompile(`^//[^/\s]+/[^\s]+$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9._@\\$-]+$`)
	domainRe   = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	nameRe     = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
	idRe       = regexp.MustCompile(`^([0-9]+|[a-z_][a-z0-9_.-]*\$?)$`)
	modeRe     = regexp.MustCompile(`^0?[0-7]{3,4}$`)
	optionRe   = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*(=[^,=\s]+)?$`)
)

// SMBVersions are the protocol dialects accepted for vers=
var SMBVersions = []string{"1.0", "2.0", "2.1", "3", "3.0", "3.0.2", "3.02", "3.1.1", "3.11", "default"}

// reservedOptions would put secrets on the unit's command line
var reservedOptions = map[string]bool{
	"username":    true,
	"user":        true,
	"password":    true,
	"pass":        true,
	"credentials": true,
}

// messages explain what a failing tag expects
var messages = map[string]string{
	"required":     "is required",
	"cifsshare":    "must look like //server/share",
	"mountpoint":   "must be an absolute path other than / without whitespace",
	"cifsuser":     "may only contain letters, digits and . _ @ \\ $ -",
	"cifsdomain":   "may only contain letters, digits and . _ -",
	"smbversion":   "must be one of " + strings.Join(SMBVersions, ", "),
	"mountname":    "must start with a letter or digit and contain only letters, digits, _ and -",
	"idspec":       "must be a numeric id or a user/group name",
	"octalmode":    "must be an octal mode such as 0755",
	"mountoptions": "must be key[=value] pairs separated by commas, without credential options",
	"singleline":   "must be a single line",
}

// fieldTags mirrors the validate tags of Config for validating a single answer
var fieldTags = map[string]string{}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	custom := map[string]func(string) bool{
		"cifsshare":    shareRe.MatchString,
		"mountpoint":   validMountPoint,
		"cifsuser":     usernameRe.MatchString,
		"cifsdomain":   domainRe.MatchString,
		"smbversion":   validSMBVersion,
		"mountname":    nameRe.MatchString,
		"idspec":       idRe.MatchString,
		"octalmode":    modeRe.MatchString,
		"mountoptions": validOptions,
		"singleline":   func(s string) bool { return !strings.ContainsAny(s, "\r\n") },
	}
	for tag, fn := range custom {
		fn := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}

	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("validate")
		if tag == "" {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			name = strings.ToLower(f.Name)
		}
		fieldTags[name] = tag
	}
	return v
}

func validMountPoint(s string) bool {
	if !path.IsAbs(s) || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	return path.Clean(s) != "/"
}

func validSMBVersion(s string) bool {
	for _, v := range SMBVersions {
		if s == v {
			return true
		}
	}
	return false
}

func validOptions(s string) bool {
	for _, o := range strings.Split(s, ",") {
		if !optionRe.MatchString(o) {
			return false
		}
		key := strings.SplitN(o, "=", 2)[0]
		if reservedOptions[strings.ToLower(key)] {
			return false
		}
	}
	return true
}

// Validate checks every field of c
func (c Config) Validate() error {
	return translate(validate.Struct(c))
}

// ValidateField checks a single answer, field being the json name of a Config field
func ValidateField(field string, value string) error {
	tag, ok := fieldTags[field]
	if !ok {
		return errors.Errorf("unknown field %q", field)
	}
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.New(describe(field, verrs[0].Tag(), value))
	}
	return err
}

// translate turns validator errors into one line per offending field
func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	lines := []string{}
	for _, fe := range verrs {
		lines = append(lines, describe(fe.Field(), fe.Tag(), fmt.Sprint(fe.Value())))
	}
	return errors.New(strings.Join(lines, "; "))
}

func describe(field, tag, value string) string {
	msg, ok := messages[tag]
	if !ok {
		msg = "failed the " + tag + " check"
	}
	if field == "password" || value == "" {
		return fmt.Sprintf("%s %s", field, msg)
	}
	return fmt.Sprintf("%s %q %s", field, value, msg)
}
