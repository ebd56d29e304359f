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

// Builder composes the Walker, Parser and Invoker for a Config.
// ext is an optional extension context. Its meaning is implementation-defined.
type Builder interface {
	// BuildWalker constructs a Walker for cfg.
	BuildWalker(cfg Config, ext any) Walker
	// BuildParser constructs a Parser for cfg.Tokens.
	BuildParser(cfg Config, ext any) Parser
	// BuildInvoker constructs an Invoker for cfg. It may reuse state from prev.
	BuildInvoker(cfg Config, prev Invoker, ext any) Invoker
}
