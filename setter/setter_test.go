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
package setter_test

import (
	"testing"

	"github.com/mailgun/latin1str/setter"
	"github.com/stretchr/testify/assert"
)

func TestIfEmpty(t *testing.T) {
	var conf struct {
		Foo string
		Bar int
	}
	assert.Equal(t, "", conf.Foo)
	assert.Equal(t, 0, conf.Bar)

	// Should apply the default values
	setter.SetDefault(&conf.Foo, "default")
	setter.SetDefault(&conf.Bar, 200)

	assert.Equal(t, "default", conf.Foo)
	assert.Equal(t, 200, conf.Bar)

	conf.Foo = "thrawn"
	conf.Bar = 500

	// Should NOT apply the default values
	setter.SetDefault(&conf.Foo, "default")
	setter.SetDefault(&conf.Bar, 200)

	assert.Equal(t, "thrawn", conf.Foo)
	assert.Equal(t, 500, conf.Bar)
}

func TestIfDefaultPrecedence(t *testing.T) {
	var conf struct {
		Foo string
		Bar string
	}

	// Should use the final default value
	envValue := ""
	setter.SetDefault(&conf.Foo, envValue, "default")
	assert.Equal(t, "default", conf.Foo)

	// Should use envValue
	envValue = "bar"
	setter.SetDefault(&conf.Bar, envValue, "default")
	assert.Equal(t, "bar", conf.Bar)
}

func TestNoDefaults(t *testing.T) {
	var thing string
	setter.SetDefault(&thing)
	assert.Equal(t, "", thing)

	setter.SetDefault(&thing, "", "")
	assert.Equal(t, "", thing)
}

func TestIsZero(t *testing.T) {
	var count64 int64
	var thing string

	assert.True(t, setter.IsZero(count64))
	assert.True(t, setter.IsZero(thing))

	thing = "thrawn"
	count64 = int64(1)
	assert.False(t, setter.IsZero(count64))
	assert.False(t, setter.IsZero(thing))
}
