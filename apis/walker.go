/*
   Copyright 2025 The DIRPX Authors.

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

package apis

// Attribute is a single (name, value) pair produced by a Walker.
// Records are transient: they are built per walk and never retained.
type Attribute struct {
	// Name is the stored attribute name, as declared.
	Name string
	// Value is the attribute value at walk time.
	Value any
}

// Walker enumerates the directly stored attributes of a subject.
type Walker interface {
	// Walk returns a fresh, ordered snapshot of the subject's attributes.
	// A nil subject yields an empty sequence. Walk never mutates the subject.
	Walk(subject any, cfg Config) []Attribute
}

// AttributeLister is the opt-in reflection capability. Subjects that
// implement it are walked through Attributes() instead of via reflect.
type AttributeLister interface {
	Attributes() []Attribute
}
