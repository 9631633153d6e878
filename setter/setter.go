/*
Copyright 2017 Mailgun Technologies Inc

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
package setter

// SetDefault assigns the first non-zero value in defaults to dest when dest
// holds the zero value of its type. Later entries only apply when every
// earlier one is zero, so an environment value can be listed ahead of a
// hard coded fallback.
//
//	var conf struct {
//		Format string
//		Out    string
//	}
//	setter.SetDefault(&conf.Format, os.Getenv("LATIN1_FORMAT"), "lines")
//	setter.SetDefault(&conf.Out, "-")
func SetDefault[T comparable](dest *T, defaults ...T) {
	if !IsZero(*dest) {
		return
	}
	for _, value := range defaults {
		if !IsZero(value) {
			*dest = value
			return
		}
	}
}

// IsZero reports whether value is the zero value of its type.
//
//	var thingy string
//	setter.IsZero(thingy) == true
func IsZero[T comparable](value T) bool {
	var zero T
	return value == zero
}
