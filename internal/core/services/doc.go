// Package services implements the driving ports by composing the
// domain logic with driven adapters. Services receive their
// collaborators through constructor injection; none holds global
// state.
package services
