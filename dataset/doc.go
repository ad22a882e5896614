// SPDX-License-Identifier: MIT

// Package dataset ships the small datasets the other packages are
// demonstrated on, plus loaders for two external formats.
//
// 📦 Built-in data (returned as fresh copies):
//   - NumFriends, DailyMinutes, DailyHours: 204 DataSciencester users;
//     WithoutOutlier drops the 100-friend user.
//   - RegressionExamples: [1, friends, work hours, PhD] → daily minutes.
//   - Users, FriendshipPairs, Interests, SalariesAndTenures: the social
//     network of ten users.
//   - Iris: the UCI iris measurements with the published errata, embedded.
//
// 📥 Loaders:
//   - ParseIris reads the iris CSV format from any io.Reader.
//   - LoadSpamCorpus reads SpamAssassin-style message directories from an
//     fs.FS; the Subject header is the text, bodies are optional and HTML
//     parts are reduced to their text.
package dataset
