// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-visible message strings of the users
// resource.
//
// Failure bodies are always {"Error": <message>} with one of the Msg*
// constants below. The server writes them and the client adapter matches on
// them, so the wording lives in one place.
package app

const (
	// MsgMissingRequiredFields is returned by create when any of the five
	// user fields is absent or invalid.
	MsgMissingRequiredFields = "Missing required fields"

	// MsgMissingRequiredField is returned when the phone identifying the
	// user is absent or not 10 characters long.
	MsgMissingRequiredField = "Missing required field"

	// MsgMissingFieldsToUpdate is returned by update when none of firstName,
	// lastName or password is present.
	MsgMissingFieldsToUpdate = "Missing fields to update"

	// MsgUserAlreadyExists is returned by create for a phone already stored.
	MsgUserAlreadyExists = "A user with that phone number already exists"

	// MsgUserDoesNotExist is returned by update for an unknown phone.
	MsgUserDoesNotExist = "The specified user does not exist"

	// MsgUserNotFound is returned by delete for an unknown phone.
	MsgUserNotFound = "Could not find the specified user"

	// MsgPasswordHashing is returned when the password cannot be hashed.
	MsgPasswordHashing = "Could not hash the user's password"

	// MsgUserCreation is returned when the record store rejects a create.
	MsgUserCreation = "Could not create the new user"

	// MsgUserUpdate is returned when the record store rejects an update.
	MsgUserUpdate = "Could not update the user"

	// MsgUserDeletion is returned when the record store rejects a delete.
	MsgUserDeletion = "Could not delete the specified user"
)
