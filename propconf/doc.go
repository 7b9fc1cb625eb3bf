// Package propconf loads property-file configuration, resolves its
// ${name} placeholders and exposes the result through typed accessors.
//
// A configuration is built once with [Load] (or [New] for entries built in
// code) and is immutable afterwards, so a *Config can be shared between
// goroutines without locking.
//
// Two placeholder syntaxes coexist and never interact:
//
//   - ${name} is resolved at load time through the scope chain: another key,
//     a builtin synonym (user.home, user.dir), the global fallback provider,
//     then the same name in the enclosing scopes of the key. An unresolved
//     or cyclic reference makes Load fail.
//   - !{name} is resolved at access time from caller-supplied substitutions
//     ([Config.GetStringWith], [PathOptions.Substitutions]); unmatched tokens
//     stay literal.
//
// Paths read with [Config.GetPath] are normalized to forward slashes, may be
// created on demand and may be checked for read/write access.
//
// Every failure is typed and carries the offending key; configuration
// errors are meant to stop the program at startup, never to be retried.
package propconf
