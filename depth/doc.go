// Package depth implements the depth buffer codec: conversion between a
// normalized [0,1] depth value and the integer range of the bound depth
// format, plus raw read/write access to an externally-owned depth buffer.
package depth
